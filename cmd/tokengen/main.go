package main

import (
	"Dotcreator/internal/pkg/security"
	"flag"
	"fmt"
	"os"
	"strings"
)

// 签发管理端 JWT，给审核接口调用方使用
func main() {
	userID := flag.Uint64("user", 1, "user id to embed in the token")
	roles := flag.String("roles", "ADMIN", "comma separated role list")
	flag.Parse()

	token, err := security.GenerateToken(*userID, strings.Split(*roles, ","))
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate token failed:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
