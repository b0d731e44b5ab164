// @title           Contrata AI API
// @version         1.0
// @description     API for the Contrata AI freelancer marketplace.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "contrata_backend/internal/app"

func main() {
	app.Run()
}
