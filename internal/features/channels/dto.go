package channels

type ListChannelsResponseDTO struct {
	Channels []*Channel `json:"channels"`
}
