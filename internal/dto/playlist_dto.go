package dto

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
}

type PlaylistSongInput struct {
	Title   string `json:"title"`
	Src     string `json:"src"`
	Img     string `json:"img"`
	AlbumID string `json:"albumId"`
	Artist  string `json:"artist"`
}

type AddSongsRequest struct {
	Songs []PlaylistSongInput `json:"songs"`
}

type RemoveSongRequest struct {
	SongTitle string `json:"songTitle"`
}

type RemoveSongsRequest struct {
	SongTitles []string `json:"songTitles"`
}
