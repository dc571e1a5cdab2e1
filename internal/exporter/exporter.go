package exporter

import (
	"errors"
	"time"

	"github.com/jewebs/sistema-gestao-conteudo/internal/dateutil"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
)

// ErrNoTasksToExport makes an empty export a user-facing condition instead of
// a silent empty file.
var ErrNoTasksToExport = errors.New("não há tarefas para exportar com os filtros atuais")

// Columns is the stable export contract: one row per task, this order.
var Columns = []string{
	"ID Tarefa",
	"Nome da Tarefa",
	"ID Projeto",
	"Cliente",
	"Início",
	"Fim",
	"Prioridade",
	"Status",
	"URL Pasta Canva",
	"Descrição Pasta Canva",
	"Criação Canva",
	"Título Post Site",
	"URL Post Site",
	"Data Post Site",
	"Status GMB",
	"Data Post GMB",
}

// Serialize flattens tasks into tabular rows, dates as DD/MM/YYYY.
func Serialize(tasks []model.Task) ([][]string, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasksToExport
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			t.TaskID,
			t.TaskName,
			t.ProjectID,
			t.Client,
			dateutil.FormatDate(t.StartDate),
			dateutil.FormatDate(t.EndDate),
			t.Priority.String(),
			t.Status.String(),
			t.CanvaAssets.FolderUrl,
			t.CanvaAssets.FolderDescription,
			dateutil.FormatDate(t.CanvaAssets.CreationDate),
			t.WebsitePost.PostTitle,
			t.WebsitePost.PostUrl,
			dateutil.FormatDate(t.WebsitePost.PostDate),
			t.GmbSubtask.Status.String(),
			formatOptionalDate(t.GmbSubtask.PostDate),
		})
	}
	return rows, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return dateutil.FormatDate(*t)
}
