package constants

// Member status
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusVisitor  = "visitor"
)

// Cell status
const (
	CellStatusActive   = "active"
	CellStatusInactive = "inactive"
)

// Liturgy types (fixed enum, not tenant-configurable)
const (
	LiturgyTypeService     = "service"
	LiturgyTypeCelebration = "celebration"
	LiturgyTypeCommunion   = "communion"
	LiturgyTypeVigil       = "vigil"
)

// Prayer request status
const (
	PrayerStatusOpen       = "open"
	PrayerStatusInProgress = "in_progress"
	PrayerStatusAnswered   = "answered"
)

// Media categories. "imagens" is load-bearing: only items in this
// category can be promoted to the public gallery.
const (
	MediaCategoryImages    = "imagens"
	MediaCategoryVideos    = "videos"
	MediaCategoryDocuments = "documentos"
	MediaCategoryAudios    = "audios"
)

var (
	MemberStatuses  = []string{MemberStatusActive, MemberStatusInactive, MemberStatusVisitor}
	LiturgyTypes    = []string{LiturgyTypeService, LiturgyTypeCelebration, LiturgyTypeCommunion, LiturgyTypeVigil}
	PrayerStatuses  = []string{PrayerStatusOpen, PrayerStatusInProgress, PrayerStatusAnswered}
	MediaCategories = []string{MediaCategoryImages, MediaCategoryVideos, MediaCategoryDocuments, MediaCategoryAudios}
)
