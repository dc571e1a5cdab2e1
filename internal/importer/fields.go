package importer

// EnumKind tags fields whose cell values are matched against a closed variant.
type EnumKind int

const (
	EnumNone EnumKind = iota
	EnumStatus
	EnumGmbStatus
)

// Field describes one mappable task field. Labels are the stable spreadsheet
// contract; client and priority are manual defaults, not mapped columns.
type Field struct {
	Key      string
	Label    string
	Required bool
	Enum     EnumKind
	Numeric  bool
}

// Fields are the mappable task fields in display order.
var Fields = []Field{
	{Key: "taskName", Label: "Nome da Tarefa", Required: true},
	{Key: "projectId", Label: "ID Projeto", Required: true},
	{Key: "status", Label: "Status", Required: true, Enum: EnumStatus},
	{Key: "canvaAssets.folderUrl", Label: "URL Pasta Canva"},
	{Key: "canvaAssets.folderDescription", Label: "Descrição Pasta Canva"},
	{Key: "canvaAssets.day", Label: "Dia Criação Canva", Required: true, Numeric: true},
	{Key: "canvaAssets.month", Label: "Mês Criação Canva", Required: true, Numeric: true},
	{Key: "canvaAssets.year", Label: "Ano Criação Canva", Required: true, Numeric: true},
	{Key: "websitePost.postTitle", Label: "Título Post Site"},
	{Key: "websitePost.postUrl", Label: "URL Post Site"},
	{Key: "websitePost.day", Label: "Dia Post Site", Required: true, Numeric: true},
	{Key: "websitePost.month", Label: "Mês Post Site", Required: true, Numeric: true},
	{Key: "websitePost.year", Label: "Ano Post Site", Required: true, Numeric: true},
	{Key: "gmbSubtask.status", Label: "Status GMB", Enum: EnumGmbStatus},
	{Key: "gmbSubtask.day", Label: "Dia Post GMB", Numeric: true},
	{Key: "gmbSubtask.month", Label: "Mês Post GMB", Numeric: true},
	{Key: "gmbSubtask.year", Label: "Ano Post GMB", Numeric: true},
}
