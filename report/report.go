// Package report renders match results for people and for other programs
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"dictcrackr/retriever"
	"dictcrackr/utility"
)

const NotFound = "<not found>"

type entry struct {
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
	Found    bool   `json:"found"`
}

// Summary is a one line overview such as "Recovered 1 of 2 passwords"
func Summary(res *retriever.MatchResult) string {
	return fmt.Sprintf("Recovered %d of %d %v", res.Found(), res.Len(), utility.Pluralize("password", res.Len()))
}

// Text writes one aligned "login  password" line per credential followed by the summary
func Text(w io.Writer, res *retriever.MatchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, m := range res.Matches {
		password, found := res.Lookup(i)
		if !found {
			password = NotFound
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\n", m.Login, password); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, Summary(res))
	return err
}

// JSON writes the result as an array of {login, password, found} objects
func JSON(w io.Writer, res *retriever.MatchResult) error {
	entries := make([]entry, 0, res.Len())
	for _, m := range res.Matches {
		entries = append(entries, entry{Login: m.Login, Password: m.Candidate, Found: m.Found})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}
