package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"schedsim/internal/requests"
)

func loadJobs(path string) ([]requests.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scheduling file: %w", err)
	}
	defer f.Close()
	return readJobs(f)
}

// readJobs parses pid,arrival,burst[,priority] rows. Values are passed through
// as strings and coerced by the normalizer like any other client input. The
// first row is treated as a header when its arrival column is not numeric.
func readJobs(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		var job requests.Job
		if len(row) > 0 {
			job.ProcessId = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			job.ArrivalTime = row[1]
		}
		if len(row) > 2 {
			job.BurstTime = row[2]
		}
		if len(row) > 3 {
			job.Priority = row[3]
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	return err != nil
}
