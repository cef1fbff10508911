package styles

import "github.com/charmbracelet/lipgloss"

// Color variables, kept in sync with the active theme by ApplyThemeColors.
var (
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	TextPrimary        lipgloss.Color
	TextSecondary      lipgloss.Color
	TextMuted          lipgloss.Color
	TextSubtle         lipgloss.Color
	TextSelectionColor lipgloss.Color

	BgPrimary   lipgloss.Color
	BgSecondary lipgloss.Color
	BgTertiary  lipgloss.Color
	BgOverlay   lipgloss.Color

	BorderNormal lipgloss.Color
	BorderActive lipgloss.Color
	BorderMuted  lipgloss.Color

	DiffAddFg    lipgloss.Color
	DiffAddBg    lipgloss.Color
	DiffRemoveFg lipgloss.Color
	DiffRemoveBg lipgloss.Color

	TextHighlight         lipgloss.Color
	ButtonHoverColor      lipgloss.Color
	LinkColor             lipgloss.Color
	ToastSuccessTextColor lipgloss.Color
	ToastErrorTextColor   lipgloss.Color

	DangerLight  lipgloss.Color
	DangerDark   lipgloss.Color
	DangerBright lipgloss.Color
	DangerHover  lipgloss.Color
	TextInverse  lipgloss.Color

	// ScrollbarTrackColor and ScrollbarThumbColor are derived from the
	// border colors rather than stored directly on the palette.
	ScrollbarTrackColor lipgloss.Color
	ScrollbarThumbColor lipgloss.Color

	CurrentSyntaxTheme   string
	CurrentMarkdownTheme string
)

// Composed lipgloss styles, rebuilt by rebuildStyles whenever the theme
// changes.
var (
	PanelActive   lipgloss.Style
	PanelInactive lipgloss.Style
	PanelHeader   lipgloss.Style
	PanelNoBorder lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	KeyHint  lipgloss.Style
	Logo     lipgloss.Style

	StatusStaged    lipgloss.Style
	StatusModified  lipgloss.Style
	StatusUntracked lipgloss.Style
	StatusDeleted   lipgloss.Style
	StatusConflict  lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	ListItemNormal   lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemFocused  lipgloss.Style
	ListCursor       lipgloss.Style

	BarTitle      lipgloss.Style
	BarText       lipgloss.Style
	BarChip       lipgloss.Style
	BarChipActive lipgloss.Style

	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style
	DiffHeader  lipgloss.Style

	WordDiffAdd    lipgloss.Style
	WordDiffRemove lipgloss.Style

	LineNumber lipgloss.Style

	TreeDir      lipgloss.Style
	TreeFile     lipgloss.Style
	TreeIgnored  lipgloss.Style
	TreeIcon     lipgloss.Style

	TextSelection lipgloss.Style

	Footer lipgloss.Style
	Header lipgloss.Style

	ModalOverlay lipgloss.Style
	ModalBox     lipgloss.Style
	ModalTitle   lipgloss.Style

	Button              lipgloss.Style
	ButtonFocused       lipgloss.Style
	ButtonHover         lipgloss.Style
	ButtonDanger        lipgloss.Style
	ButtonDangerFocused lipgloss.Style
	ButtonDangerHover   lipgloss.Style
)

func init() {
	ApplyThemeColors(DefaultTheme)
}

// rebuildStyles recreates all lipgloss styles with the current colors.
func rebuildStyles() {
	ScrollbarTrackColor = BorderMuted
	ScrollbarThumbColor = BorderActive

	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	PanelHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	PanelNoBorder = lipgloss.NewStyle().Padding(0, 1)

	Title = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	Subtitle = lipgloss.NewStyle().Foreground(TextHighlight)
	Body = lipgloss.NewStyle().Foreground(TextPrimary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Subtle = lipgloss.NewStyle().Foreground(TextSubtle)
	Code = lipgloss.NewStyle().Foreground(Accent)
	Link = lipgloss.NewStyle().Foreground(LinkColor).Underline(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	StatusStaged = lipgloss.NewStyle().Foreground(Success).Bold(true)
	StatusModified = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	StatusUntracked = lipgloss.NewStyle().Foreground(TextMuted)
	StatusDeleted = lipgloss.NewStyle().Foreground(Error).Bold(true)
	StatusConflict = lipgloss.NewStyle().Foreground(Error).Bold(true).Reverse(true)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastErrorTextColor).
		Bold(true).
		Padding(0, 1)

	ListItemNormal = lipgloss.NewStyle().Foreground(TextPrimary)
	ListItemSelected = lipgloss.NewStyle().
		Foreground(TextSelectionColor).
		Background(BgTertiary)
	ListItemFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary)
	ListCursor = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	BarTitle = lipgloss.NewStyle().Foreground(TextPrimary).Bold(true)
	BarText = lipgloss.NewStyle().Foreground(TextMuted)
	BarChip = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)
	BarChipActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 1).
		Bold(true)

	DiffAdd = lipgloss.NewStyle().Foreground(Success)
	DiffRemove = lipgloss.NewStyle().Foreground(Error)
	DiffContext = lipgloss.NewStyle().Foreground(TextMuted)
	DiffHeader = lipgloss.NewStyle().Foreground(Info).Bold(true)

	WordDiffAdd = lipgloss.NewStyle().Foreground(DiffAddFg).Background(DiffAddBg).Bold(true)
	WordDiffRemove = lipgloss.NewStyle().Foreground(DiffRemoveFg).Background(DiffRemoveBg).Bold(true)

	LineNumber = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(5).
		AlignHorizontal(lipgloss.Right)

	TreeDir = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	TreeFile = lipgloss.NewStyle().Foreground(TextPrimary)
	TreeIgnored = lipgloss.NewStyle().Foreground(TextSubtle)
	TreeIcon = lipgloss.NewStyle().Foreground(TextMuted)

	TextSelection = lipgloss.NewStyle().
		Background(BgTertiary).
		Foreground(TextSelectionColor)

	Footer = lipgloss.NewStyle().Foreground(TextMuted).Background(BgSecondary)
	Header = lipgloss.NewStyle().Background(BgSecondary)

	ModalOverlay = lipgloss.NewStyle().Background(BgOverlay)
	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgSecondary).
		Padding(1, 2)
	ModalTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true).
		MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)
	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 2).
		Bold(true)
	ButtonHover = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(ButtonHoverColor).
		Padding(0, 2)

	ButtonDanger = lipgloss.NewStyle().
		Foreground(DangerLight).
		Background(DangerDark).
		Padding(0, 2)
	ButtonDangerFocused = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(DangerBright).
		Padding(0, 2).
		Bold(true)
	ButtonDangerHover = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(DangerHover).
		Padding(0, 2)
}
