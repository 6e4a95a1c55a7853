package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chemlab",
	Short: "chemlab is a chemistry learning site: elements, compounds and reactions.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use chemlab, use `chemlab -h` for help")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
