package dto

type RecordHistoryRequest struct {
	SongTitle string `json:"songTitle"`
	SongSrc   string `json:"songSrc"`
	SongImg   string `json:"songImg"`
	AlbumID   string `json:"albumId"`
	Artist    string `json:"artist"`
}
