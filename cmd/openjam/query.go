// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taibuivan/openjam/pkg/pagination"
	"github.com/taibuivan/openjam/pkg/query"
)

// bindQueryFlags registers one flag per query parameter on flags.
func bindQueryFlags(flags *pflag.FlagSet, params *query.Parameters) {
	flags.IntVar(&params.Skip, "skip", 0, "records to skip")
	flags.IntVar(&params.Page, "page", 0, "page index, in units of --limit")
	flags.IntVar(&params.Limit, "limit", 0, "maximum records returned")
	flags.StringVar(&params.Text, "text", "", "full-text search")
	flags.StringVar(&params.Term, "term", "", "partial-match search")
	flags.BoolVar(&params.Count, "count", false, "only count matching records")
	flags.StringSliceVar(&params.Select, "select", nil, "fields to include")
	flags.StringSliceVar(&params.SearchFields, "search-field", nil, "fields searched by --term")
	flags.StringSliceVar(&params.Sort, "sort", nil, "sort fields, '-' prefix for descending")
	flags.StringSliceVar(&params.Embed, "embed", nil, "relations to populate")
}

func newQueryCommand(state *app) *cobra.Command {
	params := &query.Parameters{}

	cmd := &cobra.Command{
		Use:   "query <collection> [id]",
		Short: "Print the request path for a query without sending it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				path string
				err  error
			)
			if len(args) == 2 {
				path, err = query.ForSingle(args[0], args[1], params)
			} else {
				path, err = query.ForCollection(args[0], params)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(state.out, path)
			return nil
		},
	}
	bindQueryFlags(cmd.Flags(), params)
	return cmd
}

func newListCommand(state *app) *cobra.Command {
	params := &query.Parameters{}

	cmd := &cobra.Command{
		Use:   "list <collection>",
		Short: "Fetch one page of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindOf(args[0])
			if err != nil {
				return err
			}

			path, err := query.ForCollection(kind.Collection, params)
			if err != nil {
				return err
			}

			var response pagination.Response[map[string]any]
			if err := state.transport().Do(cmd.Context(), http.MethodGet, path, nil, &response); err != nil {
				return err
			}
			return state.printJSON(response)
		},
	}
	bindQueryFlags(cmd.Flags(), params)
	return cmd
}

func newGetCommand(state *app) *cobra.Command {
	var selected []string

	cmd := &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Fetch one document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindOf(args[0])
			if err != nil {
				return err
			}

			path, err := query.ForSingle(kind.Collection, args[1], &query.Parameters{Select: selected})
			if err != nil {
				return err
			}

			var document map[string]any
			if err := state.transport().Do(cmd.Context(), http.MethodGet, path, nil, &document); err != nil {
				return err
			}
			return state.printJSON(document)
		},
	}
	cmd.Flags().StringSliceVar(&selected, "select", nil, "fields to include")
	return cmd
}
