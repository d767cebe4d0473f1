package entity

type Founder struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// Founders is the static team list for the about page.
func Founders() []Founder {
	return []Founder{
		{
			Name:  "Keziah Letsa",
			Role:  "Co-Founder & Business Affiliate",
			Bio:   "Rising Sophomore passionate about making style accessible to all communities.",
			Image: "images/keziah.jpeg",
		},
		{
			Name:  "Yasmin Folarin",
			Role:  "Co-Founder & Business Affiliate",
			Bio:   "Rising sophomore in Business passionate about connecting brands with underserved communities.",
			Image: "images/Yasmin (1).jpeg",
		},
		{
			Name:  "Jaheem Beck",
			Role:  "Co-Founder & Product Development",
			Bio:   "Rising sophomore that has an interest in programming",
			Image: "images/Jaheem.jpg",
		},
		{
			Name:  "Tochi Ugboajah",
			Role:  "Co-Founder & Product Development",
			Bio:   "Rising sophomore passionate about Programming, and focused on building platforms that create social impact.",
			Image: "images/Tochi.jpg",
		},
	}
}
