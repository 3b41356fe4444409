package catalog

func entry(maleName, maleDesc, femaleName, femaleDesc string) Entry {
	return Entry{
		Male:   OutfitRecord{Name: maleName, Desc: maleDesc},
		Female: OutfitRecord{Name: femaleName, Desc: femaleDesc},
	}
}

var defaultCatalog = New(map[string]Entry{
	"Andhra Pradesh":    entry("Dhoti & Kurta", "Dhoti and kurta often paired with angavastram — Telugu traditional attire.", "Silk Saree (Uppada/Mangalagiri)", "Handloom silks with elegant zari; worn at weddings and festivals."),
	"Arunachal Pradesh": entry("Tribal Wraps", "Distinct tribal wraps and coats with traditional ornaments.", "Tribal Skirts & Beads", "Layered skirts and beadwork varying by tribe."),
	"Assam":             entry("Dhoti & Gamosa", "White dhoti–kurta accented with the red-bordered gamosa.", "Mekhela Sador", "Two-piece mekhela–sador made from muga or eri silk."),
	"Bihar":             entry("Dhoti & Kurta", "Simple dhoti–kurta, common in village and festival wear.", "Traditional Saree", "Drapes with regional prints; worn for rituals and fairs."),
	"Chhattisgarh":      entry("Dhoti & Angavastra", "Cotton dhoti with a shoulder cloth; often handwoven.", "Kosa Silk Saree", "Kosa silk sarees with rustic elegance and tribal motifs."),
	"Goa":               entry("Coastal Shirt & Mundu", "Light coastal garments influenced by Portuguese culture.", "Kunbi Saree", "Red-checked Kunbi saree, simple and traditional."),
	"Gujarat":           entry("Kediyu & Dhoti", "Flared kediyu with dhoti — popular in Navratri.", "Chaniya Choli", "Mirror-work chaniya choli, vibrant festival attire."),
	"Haryana":           entry("Dhoti & Kurta with Pagri", "Practical dhoti–kurta and regional turban (pagri).", "Ghagra & Odhni", "Colorful ghagra-choli with odhni for ceremonies."),
	"Himachal Pradesh":  entry("Chola & Cap", "Warm chola tunic and Himachali cap for the hills.", "Pattu / Reshta", "Woolen pattu drape with a traditional cap."),
	"Jharkhand":         entry("Dhoti & Shawl", "Dhoti paired with tribal shawls and ornaments.", "Tussar Silk Saree", "Tussar silk sarees with earthy tribal patterns."),
	"Karnataka":         entry("Panche & Kurta", "Panche (veshti) with kurta; elegant for festivals.", "Ilkal / Mysore Silk", "Ilkal and Mysore silks known for bold borders."),
	"Kerala":            entry("Mundu & Shirt", "Crisp mundu and shirt — everyday and ceremonial.", "Kasavu Saree", "Cream saree with golden border — Onam classic."),
	"Madhya Pradesh":    entry("Dhoti & Safa", "Dhoti with colorful safa (turban) at festivals.", "Chanderi Saree", "Light Chanderi silk with zari for special occasions."),
	"Maharashtra":       entry("Dhoti & Pheta", "Dhoti–kurta with traditional pheta turban.", "Nauvari Saree", "Nine-yard nauvari drape, often worn in temples."),
	"Manipur":           entry("Pheijom & Jacket", "Pheijom wrap with traditional jacket for ceremonies.", "Phanek & Innaphi", "Phanek skirt with innaphi shawl; Manipuri elegance."),
	"Meghalaya":         entry("Jymphong", "Jymphong sleeveless jacket with tribal motifs.", "Jainsem", "Layered jainsem dress of Khasi tradition."),
	"Mizoram":           entry("Wrap & Shawl", "Handwoven wraps and shawls with bright motifs.", "Puanchei", "Puanchei wrap with intricate designs."),
	"Nagaland":          entry("Shawl & Wrap", "Bold shawls showing clan identity.", "Skirt & Shawl Set", "Colorful wrap skirts and shawls with beadwork."),
	"Odisha":            entry("Dhoti & Gamucha", "Cotton dhoti with Sambalpuri patterns on gamucha.", "Sambalpuri Saree", "Ikat Sambalpuri sarees with geometric motifs."),
	"Punjab":            entry("Kurta-Pajama & Turban", "Vibrant turban and kurta–pajama—Punjabi pride.", "Salwar Kameez & Phulkari", "Salwar suits embroidered with phulkari motifs."),
	"Rajasthan":         entry("Angrakha & Safa", "Angrakha top with dhoti and colorful safa (turban).", "Ghagra Choli & Odhni", "Vibrant ghagra with mirror work and odhni veil."),
	"Sikkim":            entry("Bakhu (Kho)", "Bakhu wrap with Himalayan influences.", "Bakhu with Honju", "Bakhu dress paired with honju blouse."),
	"Tamil Nadu":        entry("Veshti & Angavastram", "Veshti and angavastram for ceremonies and festivals.", "Kanchipuram Saree", "Luxurious Kanjivaram silk with temple borders."),
	"Telangana":         entry("Dhoti & Kurta", "Dhoti–kurta with local handloom influences.", "Gadwal Saree", "Gadwal handloom saree with contrasting borders."),
	"Tripura":           entry("Dhoti & Shawl", "Light dhoti with distinctive tribal shawls.", "Rignai & Risa", "Rignai wrap skirt with risa stole for women."),
	"Uttar Pradesh":     entry("Dhoti / Kurta / Sherwani", "Dhoti–kurta daily attire; sherwani for ceremonies.", "Banarasi Saree / Lehenga", "Banarasi silks and ornate lehengas from Varanasi."),
	"Uttarakhand":       entry("Kurta & Topi", "Kurta-pajama with regional cap in the hills.", "Ghagra & Pichora", "Ceremonial pichora dupatta with ghagra skirt."),
	"West Bengal":       entry("Dhoti & Panjabi", "White dhoti and panjabi for puja and functions.", "Lal-Paar Saree", "White saree with red border — classic puja attire."),

	// Union territories
	"Andaman and Nicobar Islands":              entry("Island Wear", "Coastal attire influenced by island life.", "Island Saree", "Light drapes suitable for tropical climate."),
	"Chandigarh":                               entry("Punjabi Kurta", "Urban Punjabi-influenced kurta–pyjama.", "Salwar Kameez", "Modern salwar suits with regional embroidery."),
	"Dadra and Nagar Haveli and Daman and Diu": entry("Coastal Traditions", "Blend of coastal and tribal garments.", "Local Drapes", "Regional sarees and wrap-skirts."),
	"Delhi":                                    entry("Sherwani / Kurta", "Cosmopolitan styles—sherwanis for formal events.", "Salwar / Saree", "Urban sarees and salwar suits for ceremonies."),
	"Jammu and Kashmir":                        entry("Pheran & Cap", "Warm pheran (robe) with elaborate caps in the valley.", "Pheran & Traditional Jewelry", "Flowing pheran and rich Kashmiri embroidery."),
	"Ladakh":                                   entry("Goncha & Woolens", "Practical wool garments and Goncha for cold climates.", "Traditional Robes & Ornaments", "Layered robes with distinct tribal ornaments."),
	"Lakshadweep":                              entry("Island Wear", "Light coastal garments suited to island life.", "Local Drapes", "Breathable drapes for tropical climate."),
	"Puducherry":                               entry("Coastal Shirt & Mundu", "Coastal South Indian attire with French influence.", "Madras / Saree", "Light drapes and Madras-influenced textiles."),
})

// Default returns the built-in catalog of Indian states and union territories.
func Default() *Catalog {
	return defaultCatalog
}
