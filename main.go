package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/devfolio/cmd"
)

func main() {
	cmd.Execute()
}
