// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/spf13/cobra"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("Legalease\nVersion: %s\nBuild Time: %s\n", Version, BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
