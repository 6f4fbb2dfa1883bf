// cmd/hashpw/main.go

// Command hashpw prints an Argon2id hash of its argument, for use as the
// ADMIN_PASSWORD_HASH environment value.
package main

import (
	"fmt"
	"os"

	"github.com/KayKv10/RankForge/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	hash, err := auth.CreateHash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
