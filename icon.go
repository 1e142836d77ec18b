package iconic

import (
	"strconv"
	"strings"
)

// Icon identifies a Font Awesome glyph. Aliases are distinct Icon values
// that share a codepoint with their canonical icon and carry no description.
type Icon uint16

// Icons, in table order. IconNone has no glyph.
const (
	IconNone Icon = iota
	IconGlass
	IconMusic
	IconSearch
	IconEnvelopeOutline
	IconHeart
	IconStar
	IconStarOutline
	IconUser
	IconFilm
	IconCheck
	IconTimes
	IconRemove
	IconClose
	IconSearchPlus
	IconSearchMinus
	IconPowerOff
	IconSignal
	IconCog
	IconGear
	IconTrashOutline
	IconHome
	IconFileOutline
	IconClockOutline
	IconDownload
	IconInbox
	IconRepeat
	IconRotateRight
	IconRefresh
	IconLock
	IconFlag
	IconHeadphones
	IconVolumeOff
	IconVolumeUp
	IconQrcode
	IconBarcode
	IconTag
	IconBook
	IconBookmark
	IconPrint
	IconCamera
	IconPencil
	IconMapMarker
	IconPlay
	IconPause
	IconStop
	IconInfoCircle
	IconArrowLeft
	IconArrowRight
	IconArrowUp
	IconArrowDown
	IconExclamationTriangle
	IconWarning
	IconPlane
	IconCalendar
	IconRandom
	IconComment
	IconGithub
	IconCloud
	IconFloppyOutline
	IconSave
	IconBars
	IconNavicon
	IconReorder
	IconUndo
	IconRotateLeft
	IconBolt
	IconFlash
	IconSpinner
	IconCircle
	IconCar
	IconAutomobile
	IconCircleONotch
	IconSunOutline
	IconMoonOutline
	IconHeartbeat
	IconHourglassOutline

	iconCount
)

// iconInfo is one row of the icon table.
type iconInfo struct {
	name        string
	glyph       rune
	description string // empty for aliases
}

var iconTable = [iconCount]iconInfo{
	IconNone:                {"None", 0x0000, ""},
	IconGlass:               {"Glass", 0xf000, "Glass"},
	IconMusic:               {"Music", 0xf001, "Music"},
	IconSearch:              {"Search", 0xf002, "Search"},
	IconEnvelopeOutline:     {"EnvelopeOutline", 0xf003, "Envelope Outlined"},
	IconHeart:               {"Heart", 0xf004, "Heart"},
	IconStar:                {"Star", 0xf005, "Star"},
	IconStarOutline:         {"StarOutline", 0xf006, "Star Outlined"},
	IconUser:                {"User", 0xf007, "User"},
	IconFilm:                {"Film", 0xf008, "Film"},
	IconCheck:               {"Check", 0xf00c, "Check"},
	IconTimes:               {"Times", 0xf00d, "Times"},
	IconRemove:              {"Remove", 0xf00d, ""},
	IconClose:               {"Close", 0xf00d, ""},
	IconSearchPlus:          {"SearchPlus", 0xf00e, "Search Plus"},
	IconSearchMinus:         {"SearchMinus", 0xf010, "Search Minus"},
	IconPowerOff:            {"PowerOff", 0xf011, "Power Off"},
	IconSignal:              {"Signal", 0xf012, "Signal"},
	IconCog:                 {"Cog", 0xf013, "Cog"},
	IconGear:                {"Gear", 0xf013, ""},
	IconTrashOutline:        {"TrashOutline", 0xf014, "Trash Outlined"},
	IconHome:                {"Home", 0xf015, "Home"},
	IconFileOutline:         {"FileOutline", 0xf016, "File Outlined"},
	IconClockOutline:        {"ClockOutline", 0xf017, "Clock Outlined"},
	IconDownload:            {"Download", 0xf019, "Download"},
	IconInbox:               {"Inbox", 0xf01c, "Inbox"},
	IconRepeat:              {"Repeat", 0xf01e, "Repeat"},
	IconRotateRight:         {"RotateRight", 0xf01e, ""},
	IconRefresh:             {"Refresh", 0xf021, "Refresh"},
	IconLock:                {"Lock", 0xf023, "Lock"},
	IconFlag:                {"Flag", 0xf024, "Flag"},
	IconHeadphones:          {"Headphones", 0xf025, "Headphones"},
	IconVolumeOff:           {"VolumeOff", 0xf026, "Volume Off"},
	IconVolumeUp:            {"VolumeUp", 0xf028, "Volume Up"},
	IconQrcode:              {"Qrcode", 0xf029, "Qrcode"},
	IconBarcode:             {"Barcode", 0xf02a, "Barcode"},
	IconTag:                 {"Tag", 0xf02b, "Tag"},
	IconBook:                {"Book", 0xf02d, "Book"},
	IconBookmark:            {"Bookmark", 0xf02e, "Bookmark"},
	IconPrint:               {"Print", 0xf02f, "Print"},
	IconCamera:              {"Camera", 0xf030, "Camera"},
	IconPencil:              {"Pencil", 0xf040, "Pencil"},
	IconMapMarker:           {"MapMarker", 0xf041, "Map Marker"},
	IconPlay:                {"Play", 0xf04b, "Play"},
	IconPause:               {"Pause", 0xf04c, "Pause"},
	IconStop:                {"Stop", 0xf04d, "Stop"},
	IconInfoCircle:          {"InfoCircle", 0xf05a, "Info Circle"},
	IconArrowLeft:           {"ArrowLeft", 0xf060, "Arrow Left"},
	IconArrowRight:          {"ArrowRight", 0xf061, "Arrow Right"},
	IconArrowUp:             {"ArrowUp", 0xf062, "Arrow Up"},
	IconArrowDown:           {"ArrowDown", 0xf063, "Arrow Down"},
	IconExclamationTriangle: {"ExclamationTriangle", 0xf071, "Exclamation Triangle"},
	IconWarning:             {"Warning", 0xf071, ""},
	IconPlane:               {"Plane", 0xf072, "Plane"},
	IconCalendar:            {"Calendar", 0xf073, "Calendar"},
	IconRandom:              {"Random", 0xf074, "Random"},
	IconComment:             {"Comment", 0xf075, "Comment"},
	IconGithub:              {"Github", 0xf09b, "GitHub"},
	IconCloud:               {"Cloud", 0xf0c2, "Cloud"},
	IconFloppyOutline:       {"FloppyOutline", 0xf0c7, "Floppy Outlined"},
	IconSave:                {"Save", 0xf0c7, ""},
	IconBars:                {"Bars", 0xf0c9, "Bars"},
	IconNavicon:             {"Navicon", 0xf0c9, ""},
	IconReorder:             {"Reorder", 0xf0c9, ""},
	IconUndo:                {"Undo", 0xf0e2, "Undo"},
	IconRotateLeft:          {"RotateLeft", 0xf0e2, ""},
	IconBolt:                {"Bolt", 0xf0e7, "Lightning Bolt"},
	IconFlash:               {"Flash", 0xf0e7, ""},
	IconSpinner:             {"Spinner", 0xf110, "Spinner"},
	IconCircle:              {"Circle", 0xf111, "Circle"},
	IconCar:                 {"Car", 0xf1b9, "Car"},
	IconAutomobile:          {"Automobile", 0xf1b9, ""},
	IconCircleONotch:        {"CircleONotch", 0xf1ce, "Circle Outlined Notch"},
	IconSunOutline:          {"SunOutline", 0xf185, "Sun Outlined"},
	IconMoonOutline:         {"MoonOutline", 0xf186, "Moon Outlined"},
	IconHeartbeat:           {"Heartbeat", 0xf21e, "Heartbeat"},
	IconHourglassOutline:    {"HourglassOutline", 0xf250, "Hourglass Outlined"},
}

// iconsByName maps lower-cased names to icons.
var iconsByName = func() map[string]Icon {
	m := make(map[string]Icon, iconCount)
	for i := range iconTable {
		m[strings.ToLower(iconTable[i].name)] = Icon(i)
	}
	return m
}()

// Valid reports whether i is a known icon.
func (i Icon) Valid() bool {
	return i < iconCount
}

// String returns the icon name, e.g. "Spinner".
func (i Icon) String() string {
	if !i.Valid() {
		return "Icon(" + strconv.Itoa(int(i)) + ")"
	}
	return iconTable[i].name
}

// Glyph returns the codepoint of the icon in the Font Awesome font.
// Returns 0 for IconNone and unknown icons.
func (i Icon) Glyph() rune {
	if !i.Valid() {
		return 0
	}
	return iconTable[i].glyph
}

// Description returns the human-readable description. Aliases and unknown
// icons have none.
func (i Icon) Description() (string, bool) {
	if !i.Valid() || iconTable[i].description == "" {
		return "", false
	}
	return iconTable[i].description, true
}

// IsAlias reports whether i shares its glyph with a canonical icon.
func (i Icon) IsAlias() bool {
	return i.Valid() && i != IconNone && iconTable[i].description == ""
}

// IconByName looks up an icon by name, ignoring case.
func IconByName(name string) (Icon, bool) {
	i, ok := iconsByName[strings.ToLower(name)]
	return i, ok
}

// Icons returns every known icon except IconNone, in table order.
func Icons() []Icon {
	out := make([]Icon, 0, iconCount-1)
	for i := Icon(1); i < iconCount; i++ {
		out = append(out, i)
	}
	return out
}
