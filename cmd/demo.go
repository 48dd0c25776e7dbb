package main

import (
	"fmt"
	"io"

	"github.com/SystemBuilders/strlist/internal/dll"
	"github.com/rs/zerolog"
)

// runDemo creates a list, fills it, searches it, deletes from the
// middle, head and tail, and finally frees it, printing each step.
func runDemo(w io.Writer, log zerolog.Logger) error {
	list, err := dll.New(dll.Config{Log: &log})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Created an empty list.\n\n")

	fmt.Fprintln(w, "--- Testing Insertion ---")
	for _, v := range []string{"Apple", "Banana", "Cherry", "Date"} {
		if err := list.Insert(v); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "Inserted: Date, Cherry, Banana, Apple")
	fmt.Fprintf(w, "%s\n\n", list)

	fmt.Fprintln(w, "--- Testing Find ---")
	for _, v := range []string{"Banana", "Grape"} {
		if _, ok := list.Find(v); ok {
			fmt.Fprintf(w, "Found %q in the list.\n", v)
		} else {
			fmt.Fprintf(w, "Could not find %q in the list.\n", v)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Testing Deletion ---")
	steps := []struct {
		value string
		what  string
	}{
		{"Cherry", "middle element"},
		{"Date", "head element"},
		{"Apple", "tail element"},
		{"Grape", "non-existent"},
		{"Banana", "last element"},
	}
	for _, step := range steps {
		fmt.Fprintf(w, "Deleting %q (%s)...\n", step.value, step.what)
		if _, err := list.Delete(step.value); err != nil {
			return err
		}
		fmt.Fprintln(w, list)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Freeing List ---")
	if err := list.Destroy(); err != nil {
		return err
	}
	fmt.Fprintln(w, "List memory has been freed.")
	return nil
}
