package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quizapp/client"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "quiz server base URL")
	timeout := flag.Duration("timeout", 15*time.Second, "HTTP timeout")
	flag.Parse()

	err := client.Run(context.Background(), os.Stdin, os.Stdout, client.Config{
		BaseURL:     *server,
		HTTPTimeout: *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
