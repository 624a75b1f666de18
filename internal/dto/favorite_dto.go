package dto

type AddFavoriteRequest struct {
	SongTitle  string `json:"songTitle"`
	SongSrc    string `json:"songSrc"`
	SongImg    string `json:"songImg"`
	AlbumID    string `json:"albumId"`
	AlbumCover string `json:"albumCover"`
	Artist     string `json:"artist"`
}

type RemoveFavoriteRequest struct {
	SongTitle string `json:"songTitle"`
}

type CheckFavoriteRequest struct {
	SongTitle string `json:"songTitle"`
}

type CheckFavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

type CountFavoritesResponse struct {
	Count int64 `json:"count"`
}
