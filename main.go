package main

import "rfp-management-api/app"

func main() {
	app.Run()
}
