package systems

import (
	"encoding/json"

	"github.com/automoto/partyarena/components"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const recordsKey = "records"

// itemStore is the subset of gdata.Manager used for run records.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var recordStore itemStore

// InitRecords opens the gdata store for run records. Records stay in memory
// only when it fails.
func InitRecords(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn("could not open records store", zap.Error(err))
		return err
	}
	recordStore = m
	return nil
}

// LoadRecords returns the saved run records, or zero records when none are
// stored.
func LoadRecords() components.RecordsData {
	var records components.RecordsData
	if recordStore == nil {
		return records
	}

	data, err := recordStore.LoadItem(recordsKey)
	if err != nil {
		logger.Warn("could not load records", zap.Error(err))
		return records
	}
	if len(data) == 0 {
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("could not parse records", zap.Error(err))
		return components.RecordsData{}
	}
	return records
}

// RecordRun folds a finished run into the saved records and stores them.
func RecordRun(run *components.GameData) components.RecordsData {
	records := LoadRecords()
	records.Runs++
	if run.EnemiesDefeated > records.BestEnemiesDefeated {
		records.BestEnemiesDefeated = run.EnemiesDefeated
	}
	if run.Tick > records.LongestRunTicks {
		records.LongestRunTicks = run.Tick
	}

	if recordStore == nil {
		return records
	}
	data, err := json.Marshal(records)
	if err != nil {
		logger.Warn("could not serialize records", zap.Error(err))
		return records
	}
	if err := recordStore.SaveItem(recordsKey, data); err != nil {
		logger.Warn("could not save records", zap.Error(err))
	}
	return records
}
