package main

// @title Property Lookup API
// @version 1.0
// @description Resolves Redfin listing URLs into normalized addresses and listing details.
// @BasePath /
func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	app.InitializeServer()
	app.StartServer()
}
