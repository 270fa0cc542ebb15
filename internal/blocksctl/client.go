package blocksctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blocksd/internal/catalog"
	"blocksd/pkg/types"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func apiURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

// getJSON fetches a path from the daemon and decodes the JSON body into dst.
// Non-2xx responses become errors carrying the server's own message when the
// body is an ErrorResponse.
func getJSON(cfg *Config, path string, dst any) error {
	url := apiURL(cfg.Server, path)
	debug("GET %s", url)
	resp, err := httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(apiError(resp.StatusCode, body))
	}
	if dst == nil {
		return nil
	}
	return json.Unmarshal(body, dst)
}

func apiError(status int, body []byte) string {
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return er.Error
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return fmt.Sprintf("unexpected status %d", status)
}

func formState(fs types.FormStatus) string {
	if fs.Ready {
		return "ready"
	}
	return "loading"
}

func showStatus(cfg *Config) error {
	var st types.StatusResponse
	if err := getJSON(cfg, "/status", &st); err != nil {
		return err
	}
	fmt.Printf("forms: %d registered, %d ready, %d ops queued\n", st.RegisteredForms, st.ReadyForms, st.TotalPendingOps)
	fmt.Printf("uptime: %ds\n", st.UptimeSeconds)
	for _, f := range st.Forms {
		attached := "detached"
		if f.EditorAttached {
			attached = "attached"
		}
		fmt.Printf("  %-24s %-8s %-9s components=%d queued=%d\n", f.Name, formState(f), attached, f.Components, f.PendingOps)
	}
	return nil
}

func listForms(cfg *Config) error {
	var fr types.FormsResponse
	if err := getJSON(cfg, "/forms", &fr); err != nil {
		return err
	}
	for _, f := range fr.Forms {
		fmt.Println(f.Name)
	}
	return nil
}

func checkReady(cfg *Config, form string) error {
	var fs types.FormStatus
	if err := getJSON(cfg, "/forms/"+form, &fs); err != nil {
		return err
	}
	if !fs.Ready {
		return fmt.Errorf("form %s is still loading (%d queued ops)", form, fs.PendingOps)
	}
	fmt.Printf("%s is ready\n", form)
	return nil
}

func fetchYail(cfg *Config, form string) error {
	url := apiURL(cfg.Server, "/forms/"+form+"/yail")
	debug("GET %s", url)
	resp, err := httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(apiError(resp.StatusCode, body))
	}
	fmt.Print(string(body))
	if len(body) > 0 && body[len(body)-1] != '\n' {
		fmt.Println()
	}
	return nil
}

// validateCatalog loads a descriptor directory the same way the daemon does,
// so a broken descriptor is caught before it is deployed.
func validateCatalog(dir string) error {
	list, err := catalog.LoadDir(dir)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		warn("no descriptors found in %s", dir)
	}
	for _, ct := range list {
		debug("  %s (%s)", ct.Name, ct.Path)
	}
	info("catalog ok: %d component types", len(list))
	return nil
}
