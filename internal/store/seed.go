package store

import (
	"time"

	"github.com/jewebs/sistema-gestao-conteudo/internal/dateutil"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
)

// SeedTasks is the fallback dataset used when the persisted blob is absent or
// unreadable, dated relative to now.
func SeedTasks(now time.Time) []model.Task {
	gmbPublished1 := dateutil.AddDays(now, 11)
	gmbPublished2 := now

	return []model.Task{
		{
			TaskID:    "TSK-1718826601",
			TaskName:  `Design Landing Page "Verão 2024"`,
			ProjectID: "PJ01",
			Client:    "Nike",
			StartDate: now,
			EndDate:   dateutil.AddDays(now, 4),
			Priority:  model.PriorityHigh,
			Status:    model.StatusInProgress,
			CanvaAssets: model.CanvaAssets{
				FolderUrl:         "https://canva.com/folder/1",
				FolderDescription: "Assets para campanha de verão",
				CreationDate:      dateutil.AddDays(now, -2),
			},
			WebsitePost: model.WebsitePost{
				PostTitle: "Lançamento Coleção Verão 2024",
				PostUrl:   "https://site.com/verao-2024",
				PostDate:  dateutil.AddDays(now, 5),
			},
			GmbSubtask: model.GmbSubtask{
				PostDate: nil,
				Status:   model.GmbPending,
			},
		},
		{
			TaskID:    "TSK-1718826602",
			TaskName:  "Criação de Posts para Redes Sociais",
			ProjectID: "PJ02",
			Client:    "Adidas",
			StartDate: dateutil.AddDays(now, 2),
			EndDate:   dateutil.AddDays(now, 8),
			Priority:  model.PriorityMedium,
			Status:    model.StatusInProgress,
			CanvaAssets: model.CanvaAssets{
				FolderUrl:         "https://canva.com/folder/2",
				FolderDescription: "Posts de engajamento semanal",
				CreationDate:      now,
			},
			WebsitePost: model.WebsitePost{
				PostTitle: "Novidades da Semana",
				PostUrl:   "https://site.com/novidades",
				PostDate:  dateutil.AddDays(now, 9),
			},
			GmbSubtask: model.GmbSubtask{
				PostDate: nil,
				Status:   model.GmbNotApplicable,
			},
		},
		{
			TaskID:    "TSK-1718826603",
			TaskName:  "Atualização do Portfólio",
			ProjectID: "PJ01",
			Client:    "Nike",
			StartDate: dateutil.AddDays(now, 7),
			EndDate:   dateutil.AddDays(now, 10),
			Priority:  model.PriorityLow,
			Status:    model.StatusInProgress,
			CanvaAssets: model.CanvaAssets{
				FolderUrl:         "https://canva.com/folder/3",
				FolderDescription: "Imagens dos últimos projetos",
				CreationDate:      dateutil.AddDays(now, 6),
			},
			WebsitePost: model.WebsitePost{
				PostTitle: "Novos Projetos no Portfólio",
				PostUrl:   "https://site.com/portfolio-update",
				PostDate:  dateutil.AddDays(now, 11),
			},
			GmbSubtask: model.GmbSubtask{
				PostDate: &gmbPublished1,
				Status:   model.GmbPublished,
			},
		},
		{
			TaskID:    "TSK-1718826604",
			TaskName:  "Revisão SEO Blog",
			ProjectID: "PJ03",
			Client:    "Puma",
			StartDate: dateutil.AddDays(now, -3),
			EndDate:   dateutil.AddDays(now, 1),
			Priority:  model.PriorityHigh,
			Status:    model.StatusDone,
			CanvaAssets: model.CanvaAssets{
				FolderUrl:         "https://canva.com/folder/4",
				FolderDescription: "Imagens para posts de blog otimizados",
				CreationDate:      dateutil.AddDays(now, -4),
			},
			WebsitePost: model.WebsitePost{
				PostTitle: "Blog com SEO Renovado",
				PostUrl:   "https://site.com/blog-seo",
				PostDate:  now,
			},
			GmbSubtask: model.GmbSubtask{
				PostDate: &gmbPublished2,
				Status:   model.GmbPublished,
			},
		},
	}
}
