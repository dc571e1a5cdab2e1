package importer

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/dateutil"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/metrics"
)

var (
	// ErrClientRequired rejects an import with no default client name.
	ErrClientRequired = errors.New("por favor, insira o nome do cliente")
	// ErrMappingIncomplete rejects an import missing a required column mapping.
	ErrMappingIncomplete = errors.New("por favor, mapeie todos os campos obrigatórios")
	// ErrNothingImported is returned when every row of a non-empty batch was skipped.
	ErrNothingImported = errors.New("nenhuma tarefa pôde ser importada, verifique os dados das datas")
)

// workHours are the candidate hours for synthesized timestamps; noon is
// excluded so generated times look like work activity, not lunch.
var workHours = []int{8, 9, 10, 11, 13, 14, 15}

// Mapping assigns a sheet header to each task field key.
type Mapping map[string]string

// Result is the outcome of mapping one batch.
type Result struct {
	Tasks   []model.Task
	Skipped int
}

// Mapper turns sheet rows into task records. The random source is injected so
// synthesized times are reproducible under test.
type Mapper struct {
	rng    *rand.Rand
	logger *zap.Logger
}

func NewMapper(rng *rand.Rand, logger *zap.Logger) *Mapper {
	return &Mapper{rng: rng, logger: logger}
}

// Map builds task records from rows under the given mapping, applying the
// manual client and priority defaults to every row. Invalid rows are skipped
// and logged, never fatal; the whole import fails only when validation fails
// up front or every row was skipped.
func (m *Mapper) Map(rows []map[string]string, mapping Mapping, client string, priority model.Priority) (Result, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return Result{}, ErrClientRequired
	}

	for _, field := range Fields {
		if field.Required && mapping[field.Key] == "" {
			return Result{}, ErrMappingIncomplete
		}
	}

	res := Result{}
	for i, row := range rows {
		task, ok := m.mapRow(row, mapping, client, priority, i+3) // sheet line: title + header + 1-based
		if !ok {
			res.Skipped++
			metrics.IncrementImportRow("skipped")
			continue
		}
		res.Tasks = append(res.Tasks, task)
		metrics.IncrementImportRow("imported")
	}

	if len(res.Tasks) == 0 && len(rows) > 0 {
		return Result{}, ErrNothingImported
	}
	return res, nil
}

func (m *Mapper) mapRow(row map[string]string, mapping Mapping, client string, priority model.Priority, line int) (model.Task, bool) {
	cell := func(key string) string {
		header := mapping[key]
		if header == "" {
			return ""
		}
		return strings.TrimSpace(row[header])
	}

	task := model.Task{
		Client:   client,
		Priority: priority,
	}

	task.TaskName = cell("taskName")
	if task.TaskName == "" {
		m.logger.Warn("Import row skipped: no task name after mapping", zap.Int("line", line))
		return model.Task{}, false
	}

	task.ProjectID = cell("projectId")
	if status, ok := model.ParseStatus(cell("status")); ok {
		task.Status = status
	}
	task.CanvaAssets.FolderUrl = cell("canvaAssets.folderUrl")
	task.CanvaAssets.FolderDescription = cell("canvaAssets.folderDescription")
	task.WebsitePost.PostTitle = cell("websitePost.postTitle")
	task.WebsitePost.PostUrl = cell("websitePost.postUrl")
	if gmb, ok := model.ParseGmbStatus(cell("gmbSubtask.status")); ok {
		task.GmbSubtask.Status = gmb
	}

	canvaDate, err := dateFromCells(cell("canvaAssets.day"), cell("canvaAssets.month"), cell("canvaAssets.year"))
	if err != nil {
		m.logger.Warn("Import row skipped: invalid or incomplete Canva creation date",
			zap.Int("line", line),
			zap.Error(err),
		)
		return model.Task{}, false
	}
	task.StartDate = m.workTime(canvaDate)
	task.CanvaAssets.CreationDate = task.StartDate

	websiteDate, err := dateFromCells(cell("websitePost.day"), cell("websitePost.month"), cell("websitePost.year"))
	if err != nil {
		m.logger.Warn("Import row skipped: invalid or incomplete website post date",
			zap.Int("line", line),
			zap.Error(err),
		)
		return model.Task{}, false
	}
	task.WebsitePost.PostDate = m.workTime(websiteDate)

	// The GMB triple is optional; an invalid one just leaves the date unset.
	endDate := websiteDate
	if gmbDate, err := dateFromCells(cell("gmbSubtask.day"), cell("gmbSubtask.month"), cell("gmbSubtask.year")); err == nil {
		postDate := m.workTime(gmbDate)
		task.GmbSubtask.PostDate = &postDate
		if gmbDate.After(websiteDate) {
			endDate = gmbDate
		}
	}
	task.EndDate = m.workTime(endDate)

	if task.StartDate.After(task.EndDate) {
		m.logger.Warn("Import row has start after end, clamping end date",
			zap.Int("line", line),
			zap.Time("start", task.StartDate),
			zap.Time("end", task.EndDate),
		)
		task.EndDate = task.StartDate
	}

	return task, true
}

// workTime attaches a plausible work-hours timestamp to a civil date.
func (m *Mapper) workTime(day time.Time) time.Time {
	hour := workHours[m.rng.Intn(len(workHours))]
	minute := m.rng.Intn(60)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func dateFromCells(day, month, year string) (time.Time, error) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, errors.New("dia ausente ou não numérico")
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, errors.New("mês ausente ou não numérico")
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, errors.New("ano ausente ou não numérico")
	}
	return dateutil.DateFromParts(d, mo, y)
}
