package main

import (
	"github.com/joho/godotenv"

	"github.com/Alex2003763/caltrack/cmd/caltrack"
)

func main() {
	_ = godotenv.Load() // GEMINI_API_KEY etc.

	caltrack.Execute()
}
