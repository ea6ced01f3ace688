package importer

import (
	"context"
	"errors"

	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/token"
)

// Upload is one spreadsheet submitted for import.
type Upload struct {
	Filename  string
	Data      []byte
	Affiliate string
	Source    string
}

type ImportService struct {
	reconciler *Reconciler
}

func NewImportService(store MemberStore, newToken token.Generator) *ImportService {
	return &ImportService{
		reconciler: NewReconciler(store, newToken),
	}
}

// Import reads the upload, finds the member table on the first sheet that has
// one and reconciles its rows. A workbook without a recognizable table is not
// an error: the result is simply empty.
func (s *ImportService) Import(ctx context.Context, actor sharedContext.Actor, upload Upload) (Result, error) {
	log := logger.WithFields(ctx,
		"file", upload.Filename,
		"affiliate", upload.Affiliate,
		"admin_id", actor.AdminID,
	)

	grids, err := ReadWorkbook(upload.Filename, upload.Data)
	if err != nil {
		log.Warn("spreadsheet rejected", "error", err)
		return Result{}, err
	}

	for sheet, grid := range grids {
		mapping, err := Locate(grid)
		if errors.Is(err, ErrTableNotFound) {
			continue
		}

		log.Info("member table located",
			"sheet", sheet,
			"header_row", mapping.HeaderRow,
			"strategy", mapping.Strategy.String(),
			"has_gender", mapping.HasGender(),
		)

		batch := Batch{Affiliate: upload.Affiliate, Source: upload.Source, Actor: actor}
		result, err := s.reconciler.Reconcile(ctx, Extract(grid, mapping), batch)
		if err != nil {
			log.Error("import aborted",
				"error", err,
				"total_rows", result.TotalRows,
				"created", result.Created,
				"updated", result.Updated,
				"skipped", result.Skipped,
			)
			return result, err
		}

		log.Info("import completed",
			"total_rows", result.TotalRows,
			"created", result.Created,
			"updated", result.Updated,
			"skipped", result.Skipped,
		)
		return result, nil
	}

	log.Warn("no member table found in workbook", "sheets", len(grids))
	return Result{}, nil
}
