/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sugarlabs/aslo-catalog/pkg/serializer"
)

// Flags shared across commands.
var (
	summaryFlag = &cli.StringFlag{
		Name:    "summary",
		Aliases: []string{"o"},
		Usage:   "Write the run summary to this file instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Run summary format %v", serializer.SupportedFormats()),
	}
)
