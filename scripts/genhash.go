// Generates bcrypt hashes for seed accounts. Run with: go run scripts/genhash.go
package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	passwords := map[string]string{
		"admin@talenthub.com":   "admin123",
		"employer@techcorp.com": "employer123",
		"applicant@example.com": "applicant123",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 12)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
