package iconchanger

// ServerMetadata is the status document answered to server list pings.
type ServerMetadata struct {
	Version     MetadataVersion     `json:"version"`
	Players     MetadataPlayers     `json:"players"`
	Description MetadataDescription `json:"description"`
	Favicon     string              `json:"favicon,omitempty"`
}

type MetadataVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type MetadataPlayers struct {
	Max    int `json:"max"`
	Online int `json:"online"`
}

type MetadataDescription struct {
	Text string `json:"text"`
}

func (m *ServerMetadata) SetFavicon(uri string) {
	m.Favicon = uri
}

var _ FaviconSetter = (*ServerMetadata)(nil)
