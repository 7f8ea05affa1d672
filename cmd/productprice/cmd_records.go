package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mytheresa/product-price/app/client"
	"github.com/mytheresa/product-price/app/listview"
	"github.com/spf13/cobra"
)

var (
	recordTitle string
	recordPrice string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all products",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product and print the reloaded list",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a product's title and/or price",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product and print the reloaded list",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	addCmd.Flags().StringVar(&recordTitle, "title", "", "product name")
	addCmd.Flags().StringVar(&recordPrice, "price", "", "price")

	editCmd.Flags().StringVar(&recordTitle, "title", "", "new product name (unchanged when empty)")
	editCmd.Flags().StringVar(&recordPrice, "price", "", "new price (unchanged when empty)")
}

func runList(cmd *cobra.Command, args []string) error {
	v := listview.NewView(newController())
	v.Load(cmd.Context())
	return printRecords(cmd.OutOrStdout(), v.State().Records)
}

func runAdd(cmd *cobra.Command, args []string) error {
	v := listview.NewView(newController())
	v.SetDraft(recordTitle, recordPrice)
	if o := v.Create(cmd.Context()); o.Skipped {
		return fmt.Errorf("both --title and --price are required")
	}
	return printRecords(cmd.OutOrStdout(), v.State().Records)
}

func runEdit(cmd *cobra.Command, args []string) error {
	v := listview.NewView(newController())
	if o := v.Load(cmd.Context()); !o.Loaded {
		return printRecords(cmd.OutOrStdout(), nil)
	}

	rec, ok := v.State().Find(client.ParseID(args[0]))
	if !ok {
		return fmt.Errorf("no product with id %q", args[0])
	}
	v.OpenEdit(rec)

	title, price := rec.Title, rec.Price
	if recordTitle != "" {
		title = recordTitle
	}
	if recordPrice != "" {
		price = recordPrice
	}
	v.SetEdit(title, price)
	v.Update(cmd.Context())

	return printRecords(cmd.OutOrStdout(), v.State().Records)
}

func runDelete(cmd *cobra.Command, args []string) error {
	v := listview.NewView(newController())
	v.Delete(cmd.Context(), client.ParseID(args[0]))
	return printRecords(cmd.OutOrStdout(), v.State().Records)
}

func printRecords(out io.Writer, records []listview.Record) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT NAME\tPRICE")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t$%s\n", r.ID, r.Title, r.Price)
	}
	return w.Flush()
}
