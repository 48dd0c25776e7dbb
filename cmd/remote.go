package main

import (
	"fmt"
	"io"

	"github.com/SystemBuilders/strlist/internal/listclient"
)

// runRemote plays the demo walkthrough against a running listserver.
func runRemote(w io.Writer, client listclient.Client) error {
	id, err := client.Create()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Created list %s.\n", id)

	for _, v := range []string{"Apple", "Banana", "Cherry", "Date"} {
		if err := client.Insert(id, v); err != nil {
			return err
		}
	}
	_, rendered, err := client.Contents(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rendered)

	for _, v := range []string{"Banana", "Grape"} {
		found, err := client.Find(id, v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "find %q: %t\n", v, found)
	}

	for _, v := range []string{"Cherry", "Date", "Apple", "Grape", "Banana"} {
		deleted, err := client.Delete(id, v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "delete %q: %t\n", v, deleted)
		_, rendered, err = client.Contents(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, rendered)
	}

	if err := client.Destroy(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Destroyed list %s.\n", id)
	return nil
}
