package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the collections create command.
func (c *CollectionsCreateCmd) Run(deps *Dependencies) error {
	collection := &pagemark.Collection{Name: c.Name}
	if err := deps.Collections.CreateCollection(deps.Ctx, collection); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created collection %q (%s)\n", c.Name, collection.ID)
	return nil
}

// Run executes the collections list command.
func (c *CollectionsListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No collections found. Use 'pagemark collections create' to create one.")
		return nil
	}

	for _, collection := range collections {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", collection.ID, collection.Name)
	}

	return nil
}

// Run executes the collections delete command.
func (c *CollectionsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagemark.Errorf(pagemark.EINVALID, "use --force to confirm deletion")
	}

	collection, err := deps.Collections.FindCollectionByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'pagemark collections list' to see available collections.\n", c.Name)
		return err
	}

	if err := deps.Collections.DeleteCollection(deps.Ctx, collection.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted collection %q\n", collection.Name)
	return nil
}
