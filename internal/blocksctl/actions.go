package blocksctl

// Indirection layer to allow stubbing in tests

var (
	fnShowStatus = showStatus
	fnListForms  = listForms
	fnCheckReady = checkReady
	fnFetchYail  = fetchYail

	fnValidateCatalog = validateCatalog
)
