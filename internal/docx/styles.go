package docx

// RunStyle captures the inline run formatting of one kind of text.
// Size is in half-points, so 32 renders as 16pt.
type RunStyle struct {
	Bold  bool
	Size  int
	Color string
}

// ParagraphStyle captures alignment and spacing (in twentieths of a point)
type ParagraphStyle struct {
	Center bool
	Before int
	After  int
}

const (
	NameColor    = "2563eb"
	EmailColor   = "6b7280"
	HeadingColor = "1f2937"
)

var (
	nameRun     = RunStyle{Bold: true, Size: 32, Color: NameColor}
	emailRun    = RunStyle{Size: 20, Color: EmailColor}
	headingRun  = RunStyle{Bold: true, Size: 24, Color: HeadingColor}
	bodyRun     = RunStyle{Size: 22}
	categoryRun = RunStyle{Bold: true, Size: 20}
	itemsRun    = RunStyle{Size: 20}

	nameParagraph    = ParagraphStyle{Center: true, After: 100}
	emailParagraph   = ParagraphStyle{Center: true, After: 200}
	headingParagraph = ParagraphStyle{Before: 400, After: 200}
	bodyParagraph    = ParagraphStyle{After: 100}
)

// Page geometry for US Letter with one inch margins, in twips
const (
	pageWidth    = 12240
	pageHeight   = 15840
	pageMargin   = 1440
	contentWidth = pageWidth - 2*pageMargin
)

// Skills table column split. Percent widths are expressed in fiftieths of a percent.
const (
	tableWidthPct    = 5000
	categoryWidthPct = 1500
	itemsWidthPct    = 3500
	categoryGridCol  = contentWidth * 30 / 100
	itemsGridCol     = contentWidth - categoryGridCol
)
