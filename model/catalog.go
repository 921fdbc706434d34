package model

// CatalogEntry is the summary stored for each scanned arrangement file.
type CatalogEntry struct {
	Path           string   `json:"path" dynamodbav:"path"`
	Title          string   `json:"title" dynamodbav:"title"`
	Artist         string   `json:"artist" dynamodbav:"artist"`
	Album          string   `json:"album" dynamodbav:"album"`
	AlbumYear      int      `json:"album_year" dynamodbav:"album_year"`
	Arrangement    string   `json:"arrangement" dynamodbav:"arrangement"`
	SongLength     int      `json:"song_length" dynamodbav:"song_length"`
	AverageTempo   float32  `json:"average_tempo" dynamodbav:"average_tempo"`
	Tuning         []int16  `json:"tuning" dynamodbav:"tuning"`
	Capo           int8     `json:"capo" dynamodbav:"capo"`
	Properties     []string `json:"properties,omitempty" dynamodbav:"properties,omitempty,stringset"`
	Tones          []string `json:"tones,omitempty" dynamodbav:"tones,omitempty"`
	LastConversion string   `json:"last_conversion,omitempty" dynamodbav:"last_conversion,omitempty"`
}
