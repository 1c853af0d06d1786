package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/pkg/api/v1/handlers"
)

func init() {
	peopleCmd.AddCommand(listPeopleCmd)
	peopleCmd.AddCommand(getPersonCmd)
	peopleCmd.AddCommand(meCmd)
	peopleCmd.AddCommand(createPersonCmd)
	peopleCmd.AddCommand(updatePersonCmd)
	peopleCmd.AddCommand(deletePersonCmd)

	listPeopleCmd.Flags().StringP("email", "e", "", "filter people by email address")
	listPeopleCmd.Flags().StringP("display-name", "d", "", "filter people by display name")
	listPeopleCmd.Flags().Int("limit", 0, "maximum number of people to return")
	listPeopleCmd.Flags().Int("offset", 0, "number of people to skip")

	getPersonCmd.Flags().UintP("id", "i", 0, "ID of the person to fetch")
	_ = getPersonCmd.MarkFlagRequired("id")

	createPersonCmd.Flags().StringSliceP("email", "e", nil, "email addresses of the person to be created")
	createPersonCmd.Flags().StringP("display-name", "d", "", "display name of the person")
	createPersonCmd.Flags().String("first-name", "", "first name of the person")
	createPersonCmd.Flags().String("last-name", "", "last name of the person")
	createPersonCmd.Flags().UintSlice("license", nil, "license IDs to assign")
	_ = createPersonCmd.MarkFlagRequired("email")

	updatePersonCmd.Flags().UintP("id", "i", 0, "ID of the person to update")
	updatePersonCmd.Flags().StringP("display-name", "d", "", "new display name")
	updatePersonCmd.Flags().String("first-name", "", "new first name")
	updatePersonCmd.Flags().String("last-name", "", "new last name")
	_ = updatePersonCmd.MarkFlagRequired("id")

	deletePersonCmd.Flags().UintP("id", "i", 0, "ID of the person to be deleted")
	_ = deletePersonCmd.MarkFlagRequired("id")
}

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Manage people",
}

// GetPeopleCmd returns the people command
func GetPeopleCmd() *cobra.Command {
	return peopleCmd
}

var listPeopleCmd = &cobra.Command{
	Use:   "list",
	Short: "List people",
	Long:  `List people with optional filtering by email or display name.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, _ := cmd.Flags().GetString("email")
		displayName, _ := cmd.Flags().GetString("display-name")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		opts := &models.ListOptions{
			Email:       email,
			DisplayName: displayName,
			Limit:       limit,
			Offset:      offset,
		}

		people, err := apiClient.ListPeople(context.Background(), opts)
		if err != nil {
			return fmt.Errorf("error fetching people: %w", err)
		}

		return printJSON(people)
	},
}

var getPersonCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a person",
	Long:  "Get a person by ID",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		person, err := apiClient.GetPerson(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching person: %w", err)
		}

		return printJSON(person)
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the acting account",
	RunE: func(_ *cobra.Command, _ []string) error {
		person, err := apiClient.GetMe(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching acting account: %w", err)
		}

		return printJSON(person)
	},
}

var createPersonCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a person",
	Long:  "Create a person with the given email addresses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		emails, _ := cmd.Flags().GetStringSlice("email")
		displayName, _ := cmd.Flags().GetString("display-name")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		licenses, _ := cmd.Flags().GetUintSlice("license")

		params := handlers.CreatePersonParams{
			Emails:      emails,
			DisplayName: displayName,
			FirstName:   firstName,
			LastName:    lastName,
			Licenses:    licenses,
		}

		person, err := apiClient.CreatePerson(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error creating person: %w", err)
		}

		return printJSON(person)
	},
}

var updatePersonCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a person",
	Long:  "Update the display, first and last name of a person",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")
		displayName, _ := cmd.Flags().GetString("display-name")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		params := handlers.UpdatePersonParams{
			DisplayName: displayName,
			FirstName:   firstName,
			LastName:    lastName,
		}

		person, err := apiClient.UpdatePerson(context.Background(), id, params)
		if err != nil {
			return fmt.Errorf("error updating person: %w", err)
		}

		return printJSON(person)
	},
}

var deletePersonCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a person",
	Long:  "Delete a person with a given ID",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeletePerson(context.Background(), id); err != nil {
			return fmt.Errorf("error while deleting person: %w", err)
		}
		fmt.Println("Person deleted successfully")
		return nil
	},
}

// printJSON pretty prints the response
func printJSON(v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}
