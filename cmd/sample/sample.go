// Package sample generates a small sales data file for trying the pipeline,
// including rows that deliberately fail parsing and validation.
package sample

import (
	"sales-analytics/cmd/root"
	"sales-analytics/internal/fileutils"

	"github.com/spf13/cobra"
)

const sampleContent = `TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
T001|2024-12-01|P1|Laptop|2|45000|C001|North
T002|2024-12-02|P2|Mouse, Wireless|10|1,500|C002|South
B999|2024-12-03|P3|Broken Row|0|0|C003|East
T003|2024-12-04|P3|Monitor|1|15000|C004|West
T004|2024-12-05|P1|Laptop|1|45000|C001|North
`

// Cmd represents the sample command
var Cmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a sample sales data file",
	Run:   sampleFunc,
}

func sampleFunc(cmd *cobra.Command, args []string) {
	path := root.SharedFlags.Output
	if path == "" {
		path = "sales_data.txt"
	}

	if err := fileutils.WriteFile(path, []byte(sampleContent), 0644); err != nil {
		root.Log.Fatalf("Failed to write sample file: %v", err)
	}
	root.Log.Infof("Sample sales data written to %s", path)
}
