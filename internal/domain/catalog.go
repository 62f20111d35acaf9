package domain

// VisaStream groups visas on the directory page.
type VisaStream string

const (
	StreamSkilled        VisaStream = "skilled"
	StreamWork           VisaStream = "work"
	StreamFamily         VisaStream = "family"
	StreamStudent        VisaStream = "student"
	StreamWorkingHoliday VisaStream = "working-holiday"
)

// Visa is a catalog entry on the visa directory.
type Visa struct {
	Subclass     string
	Name         string
	Stream       VisaStream
	Residence    string
	Summary      string
	Requirements []string
}

type ResourceSection string

const (
	SectionOfficial      ResourceSection = "official"
	SectionLiving        ResourceSection = "living"
	SectionCommunity     ResourceSection = "community"
	SectionFacebook      ResourceSection = "facebook"
	SectionPetRelocation ResourceSection = "pets"
	SectionVideos        ResourceSection = "videos"
)

type Resource struct {
	Title       string
	Description string
	Link        string
	Section     ResourceSection
}

type ServiceProvider struct {
	Name     string
	Website  string
	Phone    string
	Email    string
	Address  string
	Notes    string
	Category string
}

// OccupationList is the skilled occupation list an occupation appears on.
type OccupationList string

const (
	ListMLTSSL OccupationList = "MLTSSL"
	ListSTSOL  OccupationList = "STSOL"
	ListROL    OccupationList = "ROL"
)

// Occupation is a key occupation with the body that assesses skills for it.
type Occupation struct {
	ANZSCO             string         `json:"anzsco"`
	Title              string         `json:"title"`
	List               OccupationList `json:"list"`
	AssessingAuthority string         `json:"assessingAuthority"`
}
