// Package export renders scan results for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/researchaccelerator-hub/channel-scout/model"
	"github.com/rs/zerolog/log"
)

// utf8BOM is prepended so spreadsheet tools detect the encoding of non-ASCII
// channel names and descriptions.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvHeader lists the report columns in their fixed output order.
var csvHeader = []string{
	"channel_name",
	"channel_id",
	"channel_url",
	"subscriber_count",
	"view_count",
	"latest_post_date",
	"description",
	"emails",
}

// WriteCSV writes the report rows as a UTF-8 CSV with a byte-order mark,
// header first, rows in the order given.
func WriteCSV(w io.Writer, rows []model.ReportRow) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ChannelName,
			row.ChannelID,
			row.ChannelURL,
			strconv.FormatInt(row.SubscriberCount, 10),
			strconv.FormatInt(row.ViewCount, 10),
			row.LatestPostDate,
			row.Description,
			row.Emails,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the report to a file at path, creating or truncating it.
func WriteCSVFile(path string, rows []model.ReportRow) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := WriteCSV(out, rows); err != nil {
		return err
	}

	log.Info().Str("file", path).Int("row_count", len(rows)).Msg("Report exported")
	return nil
}
