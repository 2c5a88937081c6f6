package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

const rosterSheet = "Interviews"

var rosterHeader = []string{
	"Interview ID", "Candidate", "Candidate Email", "Job", "Scheduled At",
	"Status", "Offer Decision",
}

// RosterExporter writes the interview roster as an xlsx workbook
type RosterExporter struct {
	interviewRepo port.InterviewRepository
	candidateRepo port.CandidateRepository
	jobRepo       port.JobRepository
	logger        *zap.Logger
}

// NewRosterExporter creates a roster exporter
func NewRosterExporter(
	interviewRepo port.InterviewRepository,
	candidateRepo port.CandidateRepository,
	jobRepo port.JobRepository,
	logger *zap.Logger,
) *RosterExporter {
	return &RosterExporter{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		logger:        logger,
	}
}

// Export writes the roster for interviews matching the filter to w
func (e *RosterExporter) Export(ctx context.Context, filter port.ListFilter, w io.Writer) error {
	interviews, err := e.interviewRepo.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list interviews for export: %w", err)
	}

	file := excelize.NewFile()
	defer func() {
		if cerr := file.Close(); cerr != nil {
			e.logger.Warn("Failed to close workbook", zap.Error(cerr))
		}
	}()

	file.SetSheetName("Sheet1", rosterSheet)

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range rosterHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := file.SetCellValue(rosterSheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := file.SetCellStyle(rosterSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	if err := file.SetPanes(rosterSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	for rowIdx, interview := range interviews {
		candidateName, candidateEmail := "", ""
		if candidate, err := e.candidateRepo.GetByID(ctx, interview.CandidateID); err == nil && candidate != nil {
			candidateName, candidateEmail = candidate.Name, candidate.Email
		}

		jobTitle := ""
		if job, err := e.jobRepo.GetByID(ctx, interview.JobID); err == nil && job != nil {
			jobTitle = job.Title
		}

		decision := ""
		if interview.AcceptanceStatus != "" {
			decision = workflow.StatusLabel(workflow.KindAcceptance, workflow.StatusKey(interview.AcceptanceStatus))
		}

		values := []any{
			interview.PublicID,
			candidateName,
			candidateEmail,
			jobTitle,
			interview.ScheduledAt.Format(time.RFC3339),
			workflow.StatusLabel(workflow.KindInterview, workflow.StatusKey(interview.Status)),
			decision,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := file.SetCellValue(rosterSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write roster cell: %w", err)
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(rosterHeader))
	if err := file.SetColWidth(rosterSheet, "A", lastCol, 24); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("Interview roster exported", zap.Int("rows", len(interviews)))
	return nil
}
