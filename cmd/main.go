package main

import (
	"fmt"
	"os"

	"github.com/theplow-kwak/libutils/cmd/cmd"
	"github.com/theplow-kwak/libutils/internal/env"
)

func main() {
	PrintLogo()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func PrintLogo() {
	fmt.Println(" _ _ _           _   _ _     ")
	fmt.Println("| (_) |__  _   _| |_(_) |___ ")
	fmt.Println("| | | '_ \\| | | | __| | / __|")
	fmt.Println("| | | |_) | |_| | |_| | \\__ \\")
	fmt.Println("|_|_|_.__/ \\__,_|\\__|_|_|___/")
	fmt.Println()
	fmt.Println("Disk addressing and raw sector utilities")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
