package main

import "schoolhr/internal/app/server"

func main() {
	server.Run()
}
