package csv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/hub"
)

// Columns are the columns of the review table, in order.
var Columns = []string{
	"list",
	"type",
	"first_name",
	"last_name",
	"name",
	"orcid",
	"ror_id",
	"roles",
	"affiliations",
	"affiliation_ror_ids",
	"is_contact",
	"email",
	"website",
	"position",
}

// Serialize writes the result's authors, then its contributors.
func (f *Format) Serialize(w io.Writer, result *hub.Result, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	sep := opts.MultiValueSeparator
	if sep == "" {
		sep = "|"
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	// Write header
	if opts.IncludeHeader {
		if err := writer.Write(Columns); err != nil {
			return err
		}
	}

	if result == nil {
		writer.Flush()
		return writer.Error()
	}

	for _, a := range result.Authors {
		if err := writer.Write(authorToRow("author", a, sep)); err != nil {
			return err
		}
	}
	for _, c := range result.Contributors {
		if err := writer.Write(authorToRow("contributor", c, sep)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func authorToRow(list string, a hub.Author, sep string) []string {
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i] = getColumnValue(list, a, col, sep)
	}
	return row
}

func getColumnValue(list string, a hub.Author, column, sep string) string {
	switch column {
	case "list":
		return list

	case "type":
		return string(a.Type)

	case "first_name":
		if a.Person != nil {
			return a.Person.FirstName
		}

	case "last_name":
		if a.Person != nil {
			return a.Person.LastName
		}

	case "name":
		return a.FullName()

	case "orcid":
		return a.ORCID()

	case "ror_id":
		if a.Institution != nil {
			return a.Institution.RORID
		}

	case "roles":
		return strings.Join(a.Roles, sep)

	case "affiliations":
		values := make([]string, 0, len(a.Affiliations))
		for _, aff := range a.Affiliations {
			values = append(values, aff.Value)
		}
		return strings.Join(values, sep)

	case "affiliation_ror_ids":
		ids := make([]string, 0, len(a.Affiliations))
		for _, aff := range a.Affiliations {
			ids = append(ids, aff.RORID)
		}
		return strings.Join(ids, sep)

	case "is_contact":
		return strconv.FormatBool(a.IsContact)

	case "email":
		return a.Email

	case "website":
		return a.Website

	case "position":
		return a.Position
	}
	return ""
}
