package database

import (
	"context"
	"fmt"

	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
)

const listObservationsQuery = `SELECT metric_id, title, category, to_char(datestamp, 'YYYY-MM-DD') AS datestamp,
business_unit, team, location, weight, total, totalok, slo, slo_min
FROM summary ORDER BY datestamp, metric_id`

const listEvidenceQuery = `SELECT metric_id, to_char(datestamp, 'YYYY-MM-DD') AS datestamp,
resource, resource_type, detail, compliance, business_unit, team, location
FROM detail`

func (c *Database) ListObservations(ctx context.Context) ([]aggregates.RawObservation, error) {
	records := []aggregates.RawObservation{}
	err := c.db.SelectContext(ctx, &records, listObservationsQuery)
	if err != nil {
		return nil, fmt.Errorf("fail to list summary records: %w", err)
	}
	return records, nil
}

func (c *Database) ListEvidence(ctx context.Context) ([]aggregates.RawEvidence, error) {
	records := []aggregates.RawEvidence{}
	err := c.db.SelectContext(ctx, &records, listEvidenceQuery)
	if err != nil {
		return nil, fmt.Errorf("fail to list detail records: %w", err)
	}
	return records, nil
}

type dbObservation struct {
	MetricID     string `db:"metric_id"`
	Title        string
	Category     string
	Datestamp    string
	BusinessUnit string `db:"business_unit"`
	Team         string
	Location     string
	Weight       float64
	Total        int64
	TotalOK      int64
	SLO          float64
	SLOMin       float64 `db:"slo_min"`
}

type dbEvidence struct {
	MetricID     string  `db:"metric_id"`
	Datestamp    *string `db:"datestamp"`
	Resource     string
	ResourceType string `db:"resource_type"`
	Detail       string
	Compliance   float64
	BusinessUnit string `db:"business_unit"`
	Team         string
	Location     string
}

// ReplaceRecords replaces the content of the summary and detail tables in a
// single transaction.
func (c *Database) ReplaceRecords(ctx context.Context, observations []aggregates.ObservationRecord, evidence []aggregates.EvidenceRecord) error {
	tx := c.db.MustBegin()
	shouldRollback := true
	defer func() {
		if shouldRollback {
			err := tx.Rollback()
			if err != nil {
				c.Logger.Error(err.Error())
			}
		}
	}()
	_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", "records-import")
	if err != nil {
		return err
	}
	for _, query := range CleanupQueries {
		_, err := tx.ExecContext(ctx, query)
		if err != nil {
			return fmt.Errorf("fail to clean records on query %s: %w", query, err)
		}
	}
	for _, record := range observations {
		data := dbObservation{
			MetricID:     record.MetricID,
			Title:        record.Title,
			Category:     record.Category,
			Datestamp:    record.Datestamp,
			BusinessUnit: record.BusinessUnit,
			Team:         record.Team,
			Location:     record.Location,
			Weight:       record.Weight,
			Total:        record.Total,
			TotalOK:      record.TotalOK,
			SLO:          record.SLO,
			SLOMin:       record.SLOMin,
		}
		_, err := tx.NamedExecContext(ctx, "INSERT INTO summary (metric_id, title, category, datestamp, business_unit, team, location, weight, total, totalok, slo, slo_min) VALUES (:metric_id, :title, :category, :datestamp, :business_unit, :team, :location, :weight, :total, :totalok, :slo, :slo_min)", data)
		if err != nil {
			return fmt.Errorf("fail to insert summary record for metric %s: %w", record.MetricID, err)
		}
	}
	for _, record := range evidence {
		data := dbEvidence{
			MetricID:     record.MetricID,
			Resource:     record.Resource,
			ResourceType: record.ResourceType,
			Detail:       record.Detail,
			Compliance:   record.Compliance,
			BusinessUnit: record.BusinessUnit,
			Team:         record.Team,
			Location:     record.Location,
		}
		if record.Datestamp != "" {
			datestamp := record.Datestamp
			data.Datestamp = &datestamp
		}
		_, err := tx.NamedExecContext(ctx, "INSERT INTO detail (metric_id, datestamp, resource, resource_type, detail, compliance, business_unit, team, location) VALUES (:metric_id, :datestamp, :resource, :resource_type, :detail, :compliance, :business_unit, :team, :location)", data)
		if err != nil {
			return fmt.Errorf("fail to insert detail record for metric %s: %w", record.MetricID, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return err
	}
	shouldRollback = false
	c.Logger.Info(fmt.Sprintf("%d summary and %d detail records imported", len(observations), len(evidence)))
	return nil
}
