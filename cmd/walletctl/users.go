package main

import (
	"walletportal/internal/domain/entity"
	"walletportal/internal/usecase/impl"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Browse the provider's user directory with the secret key",
	}

	usersCmd.AddCommand(newUsersListCmd())
	usersCmd.AddCommand(newUsersFindCmd())

	return usersCmd
}

func newUsersListCmd() *cobra.Command {
	var (
		limit int
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = a.cfg.Directory.PageSize
			}
			if limit <= 0 {
				limit = entity.DefaultPageSize
			}
			if page < entity.FirstPage {
				page = entity.FirstPage
			}

			result, err := a.provider.GetAllUsers(cmd.Context(), limit, page)
			if err != nil {
				return err
			}

			return a.out.Directory(entity.DirectoryState{
				Mode:       entity.DirectoryModeList,
				Wallets:    result.Wallets,
				Pagination: result.Pagination,
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "users per page (defaults to directory.pageSize)")
	cmd.Flags().IntVar(&page, "page", entity.FirstPage, "page number, starting at 1")

	return cmd
}

func newUsersFindCmd() *cobra.Command {
	var (
		field string
		value string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look up a single user",
		Example: `  walletctl users find --value alice@example.com
  walletctl users find --by address --value 0x00000000000000000000000000000000000000aa`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			directory := impl.NewUserDirectory(a.provider, a.cfg.Directory.PageSize, a.logger)
			state, err := directory.Search(cmd.Context(), entity.UserQueryField(field), value)
			if err != nil {
				return err
			}

			return a.out.Wallet(state.Result)
		},
	}

	cmd.Flags().StringVar(&field, "by", string(entity.QueryByEmail), "identifier: email|address|phone|externalWalletAddress|id")
	cmd.Flags().StringVar(&value, "value", "", "value to look up")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
