package main

import (
	"paint_quote/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
