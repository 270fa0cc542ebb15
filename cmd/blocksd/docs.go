package main

// General API documentation for swaggo. Regenerate the docs package with
// `swag init -g cmd/blocksd/docs.go -o docs`.
//
// @title           blocksd API
// @version         1.0
// @description     HTTP API for driving embedded blocks editors: form registration, component operations, workspace content and YAIL generation.
//
// @contact.name   blocksd maintainers
// @contact.url    https://github.com/your-org/blocksd
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
