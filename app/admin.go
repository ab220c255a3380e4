package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkshelf/linkshelf/internal/db"
	"github.com/linkshelf/linkshelf/internal/db/controller/credentials"
)

func init() { //nolint: gochecknoinits
	setPasswordCmd.Flags().BoolVar(&hashPassword, "hash", false,
		"store an argon2id hash instead of the plaintext password")

	adminCmd.AddCommand(setPasswordCmd)
	rootCmd.AddCommand(adminCmd)
}

var (
	hashPassword bool

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin credentials",
	}

	setPasswordCmd = &cobra.Command{
		Use:   "set-password <password>",
		Short: "Set the admin password",
		Long: `Set the admin password, replacing the stored one.

By default the password is stored as plaintext and compared by equality on
login. Anyone with read access to the database can read it. Use --hash to
store an argon2id hash instead.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			password := args[0]

			gdb, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			if hashPassword {
				if password, err = credentials.Hash(password); err != nil {
					return err
				}
			}

			if err = credentials.Set(gdb, password); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "admin password updated")

			return nil
		},
	}
)
