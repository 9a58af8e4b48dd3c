package entities

type DocumentType string

const (
	DocumentTypePassport   DocumentType = "passport"
	DocumentTypeNationalID DocumentType = "national_id"
	DocumentTypeUnknown    DocumentType = "unknown"
)

type RecordStatus string

const (
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusPartial   RecordStatus = "partial"
	RecordStatusFailed    RecordStatus = "failed"
)

// SourceFile describes the submitted document artifact. StorageKey is set
// when the original bytes were archived to blob storage.
type SourceFile struct {
	FileName   string `bson:"fileName" json:"fileName"`
	Format     string `bson:"format" json:"format"`
	Size       int64  `bson:"size" json:"size"`
	PageCount  int    `bson:"pageCount" json:"pageCount"`
	StorageKey string `bson:"storageKey,omitempty" json:"storageKey,omitempty"`
}

// QualityChecks holds the raw facial image quality metrics and the derived
// gate booleans. All three gates must hold for a liveness check to pass.
type QualityChecks struct {
	Brightness      float64 `bson:"brightness" json:"brightness"`
	BlurScore       float64 `bson:"blurScore" json:"blurScore"`
	Contrast        float64 `bson:"contrast" json:"contrast"`
	IsBrightEnough  bool    `bson:"isBrightEnough" json:"isBrightEnough"`
	IsSharpEnough   bool    `bson:"isSharpEnough" json:"isSharpEnough"`
	HasGoodContrast bool    `bson:"hasGoodContrast" json:"hasGoodContrast"`
}

func (q QualityChecks) AllPassed() bool {
	return q.IsBrightEnough && q.IsSharpEnough && q.HasGoodContrast
}
