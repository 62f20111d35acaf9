package catalog

import "github.com/alexanderramin/ozpath/internal/domain"

var resources = []domain.Resource{
	{Title: "Department of Home Affairs", Description: "Official Australian government site for immigration and citizenship", Link: "https://immi.homeaffairs.gov.au/", Section: domain.SectionOfficial},
	{Title: "SkillSelect", Description: "Express your interest in skilled migration to Australia", Link: "https://immi.homeaffairs.gov.au/visas/working-in-australia/skillselect", Section: domain.SectionOfficial},
	{Title: "Visa Finder", Description: "Find the right Australian visa for your circumstances", Link: "https://immi.homeaffairs.gov.au/visas/getting-a-visa/visa-finder", Section: domain.SectionOfficial},
	{Title: "Australian Skills Authority", Description: "Information about skills assessment for migration", Link: "https://www.vetassess.com.au/", Section: domain.SectionOfficial},
	{Title: "Study in Australia", Description: "Information about studying in Australia", Link: "https://www.studyinaustralia.gov.au/", Section: domain.SectionLiving},
	{Title: "Medicare", Description: "Australia's public health insurance system", Link: "https://www.servicesaustralia.gov.au/medicare", Section: domain.SectionLiving},
	{Title: "Seek - Job Search", Description: "Australia's largest job search site", Link: "https://www.seek.com.au/", Section: domain.SectionLiving},
	{Title: "Domain - Property Search", Description: "Find properties to rent or buy in Australia", Link: "https://www.domain.com.au/", Section: domain.SectionLiving},
	{Title: "Realestate.com.au", Description: "Australia's leading property portal for buying, selling, or renting", Link: "https://www.realestate.com.au/", Section: domain.SectionLiving},
	{Title: "Poms in Oz Forum", Description: "Forum for UK expats in Australia", Link: "https://www.pomsinoz.com/", Section: domain.SectionCommunity},
	{Title: "Expat Forum", Description: "General forum for expats in Australia", Link: "https://www.expatforum.com/forums/australia-expat-forum-for-expats-living-in-australia.6/", Section: domain.SectionCommunity},
	{Title: "British Expats", Description: "Forum for British expats worldwide, with active Australia sections", Link: "https://britishexpats.com/forum/australia-27/", Section: domain.SectionCommunity},
	{Title: "UK to Australia Migration", Description: "A dedicated group for UK citizens planning their move to Australia. Get advice on visa applications, skills assessments, and preparing for the big move.", Link: "https://www.facebook.com/groups/uktoaustraliamigration", Section: domain.SectionFacebook},
	{Title: "Moving to Australia from the UK", Description: "Support group specifically for Britons in the planning and preparation stages of emigrating to Australia. Find tips on shipping, documentation, and pre-arrival planning.", Link: "https://www.facebook.com/groups/movingtoaustraliafromuk", Section: domain.SectionFacebook},
	{Title: "UK to Australia - Skilled Migration Pathway", Description: "Focused specifically on skilled migration pathways for UK citizens. Get assistance with occupation lists, points calculations, and visa applications before you move.", Link: "https://www.facebook.com/groups/uktoausskilled", Section: domain.SectionFacebook},
	{Title: "Pets to Australia - UK Migration", Description: "Planning to bring your pet to Australia? This group specializes in the complex process of pet relocation from the UK, including quarantine requirements and preparation.", Link: "https://www.facebook.com/groups/petstoaustralia", Section: domain.SectionFacebook},
	{Title: "UK Families Moving to Australia", Description: "A group for UK families planning their move to Australia. Get advice on schools, healthcare, and family-specific visa requirements before relocating.", Link: "https://www.facebook.com/groups/ukfamiliesmovingtoaustralia", Section: domain.SectionFacebook},
	{Title: "UK Healthcare Professionals Moving to Australia", Description: "For UK doctors, nurses, and other healthcare professionals planning to work in Australia. Get advice on registration, skills assessment, and job opportunities before you move.", Link: "https://www.facebook.com/groups/ukhealthmoveaustralia", Section: domain.SectionFacebook},
	{Title: "Department of Agriculture - Pet Imports", Description: "Official information on importing pets to Australia", Link: "https://www.agriculture.gov.au/biosecurity-trade/cats-dogs", Section: domain.SectionPetRelocation},
	{Title: "Jetpets", Description: "Pet travel and relocation services to and from Australia", Link: "https://www.jetpets.com.au/", Section: domain.SectionPetRelocation},
	{Title: "PetAir UK", Description: "UK-based pet travel specialists with Australia expertise", Link: "https://www.petairuk.com/pet-travel-to-australia/", Section: domain.SectionPetRelocation},
	{Title: "That Johnston Life", Description: "Helping and inspiring people to move to Australia through practical advice and personal stories.", Link: "https://www.youtube.com/c/ThatJohnstonLife", Section: domain.SectionVideos},
	{Title: "Living Simply Australia", Description: "Focused on tips for settling into Australia, from finding accommodation to adapting to local life.", Link: "https://www.youtube.com/c/LivingSimplyAustralia", Section: domain.SectionVideos},
	{Title: "The Migration", Description: "A channel run by a registered migration agency offering detailed guidance on visa processes.", Link: "https://www.youtube.com/c/TheMigration", Section: domain.SectionVideos},
	{Title: "Life with Chioma", Description: "Personal experiences and practical advice about moving to and living in Australia as an immigrant.", Link: "https://www.youtube.com/c/LifewithChioma", Section: domain.SectionVideos},
}

var serviceProviders = []domain.ServiceProvider{
	{
		Name:     "VetAssess (Vocational Education and Training Assessment Services)",
		Website:  "vetassess.com.au",
		Phone:    "+61 3 9655 4801",
		Email:    "vetassess@vetassess.com.au",
		Address:  "Level 5, 478 Albert Street, East Melbourne, VIC 3002, Australia",
		Notes:    "For UK enquiries, contact during 10 pm–7 am UK time.",
		Category: ProviderSkills,
	},
	{
		Name:     "Down Under Centre (UK‑based Australian Immigration Services)",
		Website:  "downundercentre.com",
		Phone:    "+44 020 7060 7915",
		Email:    "info@downundercentre.com",
		Address:  "48 Queen's Road, Buckhurst Hill, Essex, IG9 5BY, United Kingdom",
		Notes:    "Office Hours: Monday–Friday, 9 am–5 pm GMT",
		Category: ProviderMigration,
	},
	{
		Name:     "True Blue Migration (Australia‑based Migration Agents)",
		Website:  "truebluemigration.com",
		Phone:    "Australia: +61 8 6189 5333, UK Office: +44 115 704 3830",
		Email:    "help@truebluemigration.com",
		Address:  "Australia: Level 1, 4 Ventnor Avenue, West Perth WA 6005, Australia\nUK: Regus House, Herald Way, Pegasus Business Park, Castle Donington, DE74 2TZ, United Kingdom",
		Notes:    "All agents are registered with the Migration Agents Registration Authority (MARA).",
		Category: ProviderMigration,
	},
	{
		Name:     "Office of the Migration Agents Registration Authority (MARA)",
		Website:  "mara.gov.au",
		Phone:    "+61 2 6272 1888",
		Email:    "mara@homeaffairs.gov.au",
		Category: ProviderOfficial,
	},
	{
		Name:     "Migration Institute of Australia (MIA)",
		Website:  "mia.org.au",
		Phone:    "+61 2 9249 9000",
		Email:    "info@mia.org.au",
		Category: ProviderOfficial,
	},
	{
		Name:     "Australian Computer Society (ACS)",
		Website:  "acs.org.au",
		Phone:    "+61 2 9299 3666",
		Email:    "assessment@acs.org.au",
		Category: ProviderSkills,
	},
	{
		Name:     "Engineers Australia",
		Website:  "engineersaustralia.org.au",
		Phone:    "+61 2 6270 6555",
		Email:    "migrationskills@engineersaustralia.org.au",
		Category: ProviderSkills,
	},
	{
		Name:     "Trades Recognition Australia (TRA)",
		Website:  "tradesrecognitionaustralia.gov.au",
		Phone:    "+61 1300 360 992",
		Email:    "traenquiries@dese.gov.au",
		Category: ProviderSkills,
	},
	{
		Name:     "Australian Institute of Teaching and School Leadership (AITSL)",
		Website:  "aitsl.edu.au",
		Phone:    "+61 3 9944 1200",
		Email:    "migration@aitsl.edu.au",
		Category: ProviderSkills,
	},
	{
		Name:     "Australian Health Practitioner Regulation Agency (AHPRA)",
		Website:  "ahpra.gov.au",
		Phone:    "+61 3 8708 9001",
		Category: ProviderSkills,
	},
	{
		Name:     "Chartered Accountants Australia and New Zealand",
		Website:  "charteredaccountantsanz.com",
		Phone:    "+61 2 9290 1344",
		Email:    "assessment@charteredaccountantsanz.com",
		Category: ProviderSkills,
	},
	{
		Name:     "Australia Migration Services UK",
		Website:  "australiamigration.co.uk",
		Phone:    "+44 203 0111 574",
		Email:    "info@australiamigration.co.uk",
		Category: ProviderMigration,
	},
	{
		Name:     "The Emigration Group",
		Website:  "emigrationgroup.com",
		Phone:    "+44 845 230 4390",
		Email:    "info@emigrationgroup.com",
		Category: ProviderMigration,
	},
	{
		Name:     "Seven Seas Worldwide (International Removals & Shipping)",
		Website:  "sevenseasworldwide.com",
		Phone:    "UK: +44 333 733 7337, Australia: +61 3 8340 4900",
		Address:  "UK: Hythe Road, Smeeth, Kent TN25 6SP\nAustralia: 38 Venture Drive, Sunshine West, Victoria 3020",
		Notes:    "Offers door-to-door removals, excess baggage shipping, and MoveCube® service for household moves and specialized shipments.",
		Category: ProviderShipping,
	},
	{
		Name:     "Track Financial - Mortgage Services",
		Website:  "trackfinancial.com",
		Phone:    "02 8051 3215",
		Email:    "admin@trackfinancial.com.au",
		Notes:    "Speak to Ben Schafer for mortgage advice. Book a FREE consultation. Find them on Instagram at track_financial",
		Category: ProviderFinance,
	},
	{
		Name:     "Jetpets Pet Travel",
		Website:  "jetpets.com.au",
		Phone:    "+61 1300 668 309",
		Email:    "info@jetpets.com.au",
		Address:  "Melbourne, Sydney, Brisbane, Perth, Adelaide",
		Notes:    "Full-service pet travel agency specializing in international pet transport",
		Category: ProviderPets,
	},
	{
		Name:     "PetAir UK",
		Website:  "petairuk.com",
		Phone:    "+44 1725 551124",
		Email:    "enquiries@petairuk.com",
		Address:  "Unit 2, Salisbury Road Business Park, Pewsey, Wiltshire, SN9 5PZ, UK",
		Notes:    "Specialists in pet travel to Australia, including quarantine arrangements",
		Category: ProviderPets,
	},
}
