package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roster-im/roster/internal/db/models"
)

func init() {
	licensesCmd.AddCommand(listLicensesCmd)
	licensesCmd.AddCommand(getLicenseCmd)

	getLicenseCmd.Flags().UintP("id", "i", 0, "ID of the license to fetch")
	_ = getLicenseCmd.MarkFlagRequired("id")
}

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "Manage licenses",
}

// GetLicensesCmd returns the licenses command
func GetLicensesCmd() *cobra.Command {
	return licensesCmd
}

var listLicensesCmd = &cobra.Command{
	Use:   "list",
	Short: "List licenses",
	Long:  "List the license catalog",
	RunE: func(_ *cobra.Command, _ []string) error {
		licenses, err := apiClient.ListLicenses(context.Background(), &models.ListOptions{})
		if err != nil {
			return fmt.Errorf("error fetching licenses: %w", err)
		}

		return printJSON(licenses)
	},
}

var getLicenseCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a license",
	Long:  "Get a license by ID",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		license, err := apiClient.GetLicense(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching license: %w", err)
		}

		return printJSON(license)
	},
}
