package domain

type FilterCriteria struct {
	Keyword  string
	Location string
	JobType  JobType
	Industry string
}

func (c FilterCriteria) IsEmpty() bool {
	return c == FilterCriteria{}
}

type Page struct {
	Number int
	Size   int
}

func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 0 {
		p.Size = 0
	}
	return p
}
