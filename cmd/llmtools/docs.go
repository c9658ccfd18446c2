package main

// General API information for the swag annotations; the served document lives in internal/apidocs.
//
// @title           llmtools API
// @version         1.0
// @description     HTTP API behind the llmtools dashboard: engine commands, container status, hub browser, token estimator and model config editor.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
