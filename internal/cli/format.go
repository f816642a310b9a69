package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"quotedesk/internal/adapter/export"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
)

// printJSON marshals v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printQuoteTable prints quotes as a formatted table.
func printQuoteTable(out io.Writer, quotes []entities.Quote) error {
	if len(quotes) == 0 {
		fmt.Fprintln(out, "No quotes found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tCREATED\tNAME\tPHONE\tSERVICE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	csv := export.NewCSVExporter()
	for _, q := range quotes {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			q.ID,
			csv.FormatTimestamp(q.CreatedAt),
			q.Contact.Name,
			q.Contact.Phone,
			q.ServiceType.Label(),
			q.Status.Label(),
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	return w.Flush()
}

func printQuoteDetail(w io.Writer, q entities.Quote) {
	fmt.Fprintf(w, "Quote %s\n", q.ID)
	fmt.Fprintf(w, "  Status:   %s (%s)\n", q.Status.Label(), q.Status)
	fmt.Fprintf(w, "  Service:  %s / %s\n", q.ServiceType.Label(), q.CleaningType)
	fmt.Fprintf(w, "  Name:     %s\n", q.Contact.Name)
	fmt.Fprintf(w, "  Phone:    %s\n", q.Contact.Phone)
	if q.Contact.Email != "" {
		fmt.Fprintf(w, "  Email:    %s\n", q.Contact.Email)
	}
	fmt.Fprintf(w, "  Region:   %s\n", export.Region(q))
	if q.Space.Type != "" || q.Space.Size != "" {
		fmt.Fprintf(w, "  Space:    %s %s %s\n", q.Space.Type, q.Space.Size, q.Space.Rooms)
	}
	if q.Schedule.PreferredDate != "" {
		fmt.Fprintf(w, "  Schedule: %s %s %s\n", q.Schedule.PreferredDate, q.Schedule.PreferredTime, q.Schedule.Urgency)
	}
	if q.AdditionalInfo != "" {
		fmt.Fprintf(w, "  Request:  %s\n", q.AdditionalInfo)
	}
	fmt.Fprintf(w, "  Created:  %s\n", export.NewCSVExporter().FormatTimestamp(q.CreatedAt))
	if q.UpdatedAt != nil {
		fmt.Fprintf(w, "  Updated:  %s\n", export.NewCSVExporter().FormatTimestamp(*q.UpdatedAt))
	}
}

func printStats(out io.Writer, s usecase.QuoteStats) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TOTAL\t%d\n", s.Total)
	for _, st := range entities.AllQuoteStatuses {
		fmt.Fprintf(w, "%s\t%d\n", st.Label(), s.ByStatus[st])
	}
	for _, t := range []entities.ServiceType{entities.ServiceTypeDirect, entities.ServiceTypePartner} {
		fmt.Fprintf(w, "%s\t%d\n", t.Label(), s.ByServiceType[t])
	}
	return w.Flush()
}
