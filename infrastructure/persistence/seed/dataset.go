package seed

import "presidia-backend/domain/model"

// Demo dataset: one briefing day with six meetings, each backed by a fully
// researched contact. Mirrors the production seed script.

func avatar(name string) *string {
	s := "https://ui-avatars.com/api/?name=" + name + "&background=78716c&color=fff"
	return &s
}

var organizations = []model.Organization{
	{Name: "Begin Software", Description: str("Denver-based software development team that has built dev teams for 50+ companies.")},
	{Name: "Gem Investments", Description: str("$12B OCIO platform with VC, private credit, and lending verticals.")},
	{Name: "Handle", Description: str("YC-backed construction finance and credit software platform.")},
	{Name: "Abstract", Description: str("Abstract Ventures — early-stage venture capital firm.")},
	{Name: "Spring Street Wealth", Description: str("Wealth management firm.")},
	{Name: "Inflection Capital", Description: str("Alternative investment distribution and advisory services.")},
}

var demoBriefing = model.Briefing{
	ID:    "2026-02-09",
	Date:  "Sunday, February 9, 2026",
	Title: "Daily Briefing",
}

var contacts = []contactSeed{
	{
		contact: model.Contact{
			Name:        "Brandon Frisch",
			Role:        str("Managing Director & Co-founder"),
			ImageURL:    avatar("Brandon+Frisch"),
			Bio:         str("Co-founder of Begin Software, a Denver-based software development team that has built dev teams for 50+ companies. Specializes in scaling engineering organizations and technical project delivery."),
			LinkedinURL: str("https://linkedin.com/in/brandonfrisch"),
		},
		org: "Begin Software",
		links: []model.ContactLink{
			{Type: model.LinkLinkedin, URL: "https://linkedin.com/in/brandonfrisch"},
			{Type: model.LinkWebsite, URL: "https://beginsoftware.com", Label: str("Begin Software")},
			{Type: model.LinkTwitter, URL: "https://x.com/brandonfrisch"},
			{Type: model.LinkGithub, URL: "https://github.com/brandonfrisch"},
		},
		career: []model.CareerEntry{
			{Role: "Managing Director & Co-founder", Company: "Begin Software", StartDate: str("2018"), EndDate: str("Present"), Description: str("Built a 40+ engineer outsourced dev team serving 50+ companies. Focused on scaling engineering orgs for startups and mid-market."), IsCurrent: true, Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/brandonfrisch")},
			{Role: "VP of Engineering", Company: "Techstars", StartDate: str("2015"), EndDate: str("2018"), Description: str("Led engineering for accelerator programs. Mentored 100+ early-stage startup CTOs."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/brandonfrisch")},
			{Role: "Senior Software Engineer", Company: "Rally Software (CA Technologies)", StartDate: str("2012"), EndDate: str("2015"), Description: str("Full-stack engineer on agile project management tools before the CA Technologies acquisition."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/brandonfrisch")},
		},
		news: []model.NewsItem{
			{Title: "Begin Software expands AI practice with dedicated agent tooling team", Source: str("Denver Business Journal"), URL: str("https://bizjournals.com/denver/news/begin-software-ai-practice"), Date: "Jan 2026", Summary: str("The Denver dev shop formed a dedicated practice for AI and agent infrastructure work, citing demand from early-stage clients.")},
		},
		events: []model.LifeEvent{
			{Event: "Company milestone", Date: "Jan 2026", Description: str("Begin Software crossed 50 client companies served since founding."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/brandonfrisch/posts/begin-50-clients")},
			{Event: "Relocated", Date: "2023", Description: str("Moved from Boulder to Denver to be closer to the startup ecosystem."), Source: str("LinkedIn")},
		},
		timeline: []model.TimelineEntry{
			{Type: model.InteractionIntro, Title: "Intro from Mike Chen", Description: str("Mike Chen (Techstars network) connected you via email. Mike said Brandon runs a solid dev shop and would be a great partner for agent infrastructure projects."), Date: "Jan 10, 2026", Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Intro from Mike — engineering partnership", Description: str("Hey Daniel, Mike Chen mentioned you're building some interesting agent infrastructure. We've been helping startups scale their eng teams and I'd love to chat about how Begin could support..."), Date: "Jan 12, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("brandon@beginsoftware.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Intro from Mike — engineering partnership", Description: str("Brandon, thanks for reaching out. Would love to learn more about Begin's approach. Are you free for a coffee when I'm in Denver next month?"), Date: "Jan 14, 2026", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("brandon@beginsoftware.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Intro from Mike — engineering partnership", Description: str("Absolutely — let's lock in Feb 9. I'll send a calendar invite. Looking forward to it."), Date: "Jan 15, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("brandon@beginsoftware.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
		},
		meeting: &model.Meeting{
			Time: "10:30 AM", Hour: 10.5,
			TalkingPoints: jsonList(
				"Ask about their team's experience with AI/agent tooling",
				"Explore potential development partnership for Anon integrations",
				"Discuss their client base and ideal project types",
			),
			RecentNews: str("Begin Software recently expanded to 40+ engineers across multiple time zones."),
			Summary:    str("Brandon co-founded Begin Software in 2018 and has grown it to 40+ engineers serving 50+ companies. Former VP Engineering at Techstars. Deep Denver tech ecosystem ties. Recently published on scaling outsourced dev teams and is speaking at Denver Startup Week on AI-era engineering. Good fit for a development partnership — his team has breadth across stacks and he understands early-stage velocity needs."),
			Context:    str("Warm intro via Mike Chen (Techstars network). You and Brandon exchanged a few emails in January after Mike connected you. He's interested in exploring how Begin could provide engineering support for agent infrastructure projects. This is your first face-to-face meeting."),
			Notes: jsonList(
				"Brandon mentioned in his last email that he's specifically looking to grow their AI/ML practice — good angle for partnership.",
				"Begin's hourly rates are competitive for Denver market (~$85-120/hr depending on seniority).",
				"Mike Chen vouched strongly — said Brandon is 'the most reliable operator in Denver tech.'",
			),
		},
	},
	{
		contact: model.Contact{
			Name:        "Kate Simpson",
			Role:        str("Managing Director, Head of VC"),
			ImageURL:    avatar("Kate+Simpson"),
			Bio:         str("24+ years in investment management. Leads VC initiatives at Gem's $12B OCIO platform. Helped launch Gem's private credit and lending verticals."),
			LinkedinURL: str("https://linkedin.com/in/katesimpson"),
		},
		org: "Gem Investments",
		links: []model.ContactLink{
			{Type: model.LinkLinkedin, URL: "https://linkedin.com/in/katesimpson"},
			{Type: model.LinkWebsite, URL: "https://geminvestments.com", Label: str("Gem Investments")},
			{Type: model.LinkTwitter, URL: "https://x.com/katesimpsonvc"},
		},
		career: []model.CareerEntry{
			{Role: "Managing Director, Head of VC", Company: "Gem Investments", StartDate: str("2020"), EndDate: str("Present"), Description: str("Leads all VC initiatives across Gem's $12B OCIO platform. Launched private credit and lending verticals."), IsCurrent: true, Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/katesimpson")},
			{Role: "Director, Private Investments", Company: "Cambridge Associates", StartDate: str("2014"), EndDate: str("2020"), Description: str("Managed $3B+ in alternative allocations for institutional LPs. Sourced and evaluated VC fund managers."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/katesimpson")},
			{Role: "Associate", Company: "Goldman Sachs", StartDate: str("2008"), EndDate: str("2014"), Description: str("Investment banking and private wealth management. Covered technology and healthcare sectors."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/katesimpson")},
			{Role: "Analyst", Company: "Morgan Stanley", StartDate: str("2002"), EndDate: str("2008"), Description: str("Equity research covering financial services. Started career in institutional sales."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/katesimpson")},
		},
		news: []model.NewsItem{
			{Title: "Gem Investments launches private credit vertical", Source: str("Institutional Investor"), URL: str("https://institutionalinvestor.com/gem-private-credit"), Date: "Dec 2025", Summary: str("The $12B OCIO platform expanded beyond traditional VC with a dedicated private credit and lending arm.")},
			{Title: "Kate Simpson named to 40 Under 40 in Finance", Source: str("Fortune"), URL: str("https://fortune.com/40-under-40-finance-2025"), Date: "Oct 2025", Summary: str("Recognized for building Gem's venture platform and championing AI infrastructure investing.")},
		},
		events: []model.LifeEvent{
			{Event: "Promotion", Date: "2024", Description: str("Promoted to Managing Director at Gem Investments, overseeing all VC initiatives."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/katesimpson")},
			{Event: "Board appointment", Date: "Dec 2025", Description: str("Joined the board of a stealth AI infrastructure startup."), Source: str("Crunchbase"), SourceURL: str("https://crunchbase.com/person/kate-simpson")},
		},
		timeline: []model.TimelineEntry{
			{Type: model.InteractionMeeting, Title: "Met at fintech dinner in NYC", Description: str("Sat next to Kate at the Piper Sandler fintech dinner. Talked about AI infrastructure investing and Gem's OCIO model. She was very engaged and asked detailed questions about agent use cases."), Date: "Nov 17, 2025", Duration: str("~30 min"), Channel: str("in-person")},
			{Type: model.InteractionEmail, Title: "Great meeting you at the fintech dinner", Description: str("Daniel, enjoyed our conversation last night about AI infrastructure. Gem is actively looking at this space and I'd love to continue the dialogue..."), Date: "Nov 18, 2025", Direction: dir(model.DirectionInbound), FromAddress: str("kate.simpson@geminvestments.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Great meeting you at the fintech dinner", Description: str("Kate, likewise! Your perspective on the OCIO model and how it intersects with AI was really interesting. Happy to share more about what we're building whenever you have time."), Date: "Nov 20, 2025", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("kate.simpson@geminvestments.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Coffee in Denver?", Description: str("I'll be in Denver the week of Feb 9 for a board meeting. Any chance you're around? Would love to meet in person and go deeper on the AI infra thesis."), Date: "Jan 28, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("kate.simpson@geminvestments.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Coffee in Denver?", Description: str("Perfect timing — I'm in Denver that week too. How about Sunday morning, Feb 9 at 11 AM? There's a great spot near Union Station."), Date: "Jan 29, 2026", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("kate.simpson@geminvestments.com"), Channel: str("gmail")},
		},
		meeting: &model.Meeting{
			Time: "11:00 AM", Hour: 11,
			TalkingPoints: jsonList(
				"Understand Gem's thesis on AI infrastructure investments",
				"Discuss their portfolio company needs for agent/automation tooling",
				"Explore strategic partnership or investment opportunities",
			),
			RecentNews: str("Gem recently launched their private credit vertical, expanding beyond traditional VC."),
			Summary:    str("Kate leads VC at Gem Investments, a $12B OCIO platform. 24+ years in investment management spanning Goldman Sachs, Morgan Stanley, and Cambridge Associates. Recently named to 40 Under 40 in Finance. Gem just launched a private credit vertical and she's published bullish takes on AI infrastructure investing. Well-positioned as both a potential investor and a connector to Gem's portfolio companies."),
			Context:    str("Met Kate at a fintech dinner in NYC last November. She mentioned Gem was looking at AI infrastructure deals and you followed up by email. She's been responsive and suggested meeting when schedules aligned. You've had two prior email exchanges — one about the market and one to set up this meeting."),
			Notes: jsonList(
				"Kate's LinkedIn post on AI infrastructure got 2,400+ engagements — she's clearly building thought leadership here.",
				"Gem's OCIO model means they allocate on behalf of endowments and foundations — could be a different investor profile than typical VC.",
				"She prefers in-person meetings over Zoom, per her email style.",
			),
		},
	},
	{
		contact: model.Contact{
			Name:        "Hannah Corry",
			Role:        str("Co-founder"),
			ImageURL:    avatar("Hannah+Corry"),
			Bio:         str("YC-backed founder building Handle, a construction finance and credit software platform. Focused on modernizing financial operations in the construction industry."),
			LinkedinURL: str("https://linkedin.com/in/hannahcorry"),
		},
		org: "Handle",
		links: []model.ContactLink{
			{Type: model.LinkLinkedin, URL: "https://linkedin.com/in/hannahcorry"},
			{Type: model.LinkWebsite, URL: "https://handle.com", Label: str("Handle")},
			{Type: model.LinkTwitter, URL: "https://x.com/hannahcorry"},
			{Type: model.LinkYCombinator, URL: "https://ycombinator.com/companies/handle", Label: str("YC Profile")},
		},
		career: []model.CareerEntry{
			{Role: "Co-founder & CEO", Company: "Handle", StartDate: str("2024"), EndDate: str("Present"), Description: str("Building construction finance software to modernize credit and payment operations. YC W24 batch."), IsCurrent: true, Source: str("Crunchbase"), SourceURL: str("https://crunchbase.com/organization/handle-finance")},
			{Role: "Product Manager", Company: "Brex", StartDate: str("2021"), EndDate: str("2024"), Description: str("Led product for spend management targeting construction and real estate verticals."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/hannahcorry")},
			{Role: "Associate", Company: "Bain & Company", StartDate: str("2019"), EndDate: str("2021"), Description: str("Strategy consulting focused on fintech and financial services clients."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/hannahcorry")},
		},
		news: []model.NewsItem{
			{Title: "Handle closes $4M seed round led by YC Continuity", Source: str("TechCrunch"), URL: str("https://techcrunch.com/2026/01/30/handle-seed-round"), Date: "Jan 2026", Summary: str("The construction finance startup raised from YC Continuity and fintech angels to automate lender integrations.")},
		},
		events: []model.LifeEvent{
			{Event: "Founded company", Date: "2024", Description: str("Left Brex to co-found Handle, accepted into YC W24 batch."), Source: str("Y Combinator"), SourceURL: str("https://ycombinator.com/companies/handle")},
			{Event: "Fundraise", Date: "Jan 2026", Description: str("Closed $4M seed round led by YC Continuity and fintech angels."), Source: str("TechCrunch"), SourceURL: str("https://techcrunch.com/2026/01/30/handle-seed-round")},
		},
		timeline: []model.TimelineEntry{
			{Type: model.InteractionIntro, Title: "Intro from Sarah at YC", Description: str("Sarah from YC mentioned Handle as a company with interesting agent/automation needs in fintech. Didn't make a formal intro — Hannah reached out on her own after the demo."), Date: "Dec 8, 2025", Channel: str("linkedin")},
			{Type: model.InteractionEmail, Title: "Loved your demo at the YC event", Description: str("Hi Daniel! I'm Hannah, co-founder of Handle (YC W24). Your agent infrastructure demo really resonated with me — we have a massive integration problem with banks and lenders that this could solve..."), Date: "Dec 10, 2025", Direction: dir(model.DirectionInbound), FromAddress: str("hannah@handle.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Loved your demo at the YC event", Description: str("Hannah, thanks! Construction finance is a fascinating space. I looked at Handle and the problem you're solving is huge. Would love to learn more — can we hop on a Zoom?"), Date: "Dec 12, 2025", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("hannah@handle.com"), Channel: str("gmail")},
			{Type: model.InteractionCall, Title: "Zoom call — Handle product walkthrough", Description: str("Hannah walked through Handle's product and explained the integration challenges with banks and lenders. Construction payments are incredibly manual. Discussed potential pilot scope for agent-based automation of lender integrations."), Date: "Jan 15, 2026", Duration: str("35 min"), Channel: str("zoom")},
			{Type: model.InteractionEmail, Title: "Zoom follow-up + in-person?", Description: str("Great call today! I'm even more excited about the potential here. I'll be in Denver Feb 9 — want to meet up and discuss a pilot?"), Date: "Jan 20, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("hannah@handle.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Zoom follow-up + in-person?", Description: str("Definitely, let's do it. I'll block 11:30 AM. Send me the details on what you'd need for a pilot and I'll come prepared."), Date: "Jan 21, 2026", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("hannah@handle.com"), Channel: str("gmail")},
		},
		meeting: &model.Meeting{
			Time: "11:30 AM", Hour: 11.5,
			TalkingPoints: jsonList(
				"Learn about Handle's integration needs with banks and lenders",
				"Discuss construction industry pain points around automation",
				"Explore how Anon's agent infrastructure could help their product",
			),
			RecentNews: str("Handle recently closed their YC funding round."),
			Summary:    str("Hannah left Brex in 2024 to co-found Handle, a YC W24 construction finance platform. Just closed a $4M seed led by YC Continuity. Former Bain consultant. She's vocal on Twitter about construction industry inefficiencies costing $40B/year in payment delays. Handle needs deep integrations with banks and lenders — potential use case for agent infrastructure to automate those connections."),
			Context:    str("Intro from Sarah at YC. Hannah reached out directly after seeing your demo at a YC event in December. You had a brief Zoom call in January where she walked through Handle's product and integration challenges. She specifically asked to meet in person to discuss a potential pilot."),
			Notes: jsonList(
				"Handle currently integrates with 3 banks manually — she mentioned scaling to 50+ is their biggest bottleneck.",
				"Her co-founder (not attending) is the technical one — may need a follow-up call with their CTO.",
				"She's actively fundraising Series A in Q2 — timing is good for a pilot that demonstrates traction.",
			),
		},
	},
	{
		contact: model.Contact{
			Name:        "Caroline Stevenson",
			Role:        str("Operating Partner, Talent"),
			ImageURL:    avatar("Caroline+Stevenson"),
			Bio:         str("Built talent organizations at multiple high-growth companies. Previously led People at Gem. Now Operating Partner focused on Talent at Abstract Ventures."),
			LinkedinURL: str("https://linkedin.com/in/carolinestevenson"),
		},
		org: "Abstract",
		links: []model.ContactLink{
			{Type: model.LinkLinkedin, URL: "https://linkedin.com/in/carolinestevenson"},
			{Type: model.LinkWebsite, URL: "https://abstract.vc", Label: str("Abstract Ventures")},
			{Type: model.LinkTwitter, URL: "https://x.com/carolinestev"},
		},
		career: []model.CareerEntry{
			{Role: "Operating Partner, Talent", Company: "Abstract Ventures", StartDate: str("2025"), EndDate: str("Present"), Description: str("Advises portfolio companies on hiring strategy, org design, and executive recruiting."), IsCurrent: true, Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/carolinestevenson")},
			{Role: "VP People", Company: "Gem (Recruiting Platform)", StartDate: str("2021"), EndDate: str("2025"), Description: str("Scaled the People org from 50 to 300 employees. Led all talent acquisition, people ops, and culture."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/carolinestevenson")},
			{Role: "Head of Talent", Company: "Plaid", StartDate: str("2018"), EndDate: str("2021"), Description: str("Built recruiting function during hypergrowth phase. Hired 200+ engineers and go-to-market team."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/carolinestevenson")},
			{Role: "Recruiter", Company: "Google", StartDate: str("2014"), EndDate: str("2018"), Description: str("Technical recruiting for Cloud and AI teams."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/carolinestevenson")},
		},
		events: []model.LifeEvent{
			{Event: "New role", Date: "Jan 2026", Description: str("Joined Abstract Ventures as Operating Partner after 4 years at Gem."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/carolinestevenson/posts/joining-abstract")},
			{Event: "Speaking engagement", Date: "Nov 2025", Description: str("Keynote at SaaStr Annual on building people-first engineering cultures."), Source: str("Twitter"), SourceURL: str("https://x.com/carolinestev/status/saastr-keynote")},
		},
		timeline: []model.TimelineEntry{
			{Type: model.InteractionIntro, Title: "Intro from David Park", Description: str("David Park (mutual friend from Plaid days) connected you and Caroline over email. Said you two should know each other — she's advising Abstract portfolio companies on talent and tooling."), Date: "Jan 8, 2026", Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Intro: David Park → Daniel + Caroline", Description: str("Thanks David! Caroline, great to e-meet you. I'd love to chat about how Abstract's portfolio companies are thinking about AI tooling and talent. Are you open to meeting Feb 9 in Denver?"), Date: "Jan 9, 2026", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("caroline@abstract.vc"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Intro: David Park → Daniel + Caroline", Description: str("Daniel, would love that! Feb 9 works. How about 2 PM? I'm curious to hear about the agent landscape — it's coming up a lot with our founders."), Date: "Jan 10, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("caroline@abstract.vc"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
		},
		meeting: &model.Meeting{
			Time: "2:00 PM", Hour: 14,
			TalkingPoints: jsonList(
				"Discuss Abstract's portfolio company hiring needs",
				"Explore talent strategies for AI-native companies",
				"Potential intro to Abstract portfolio companies needing Anon",
			),
			RecentNews: str("Recently joined Abstract as Operating Partner after leading People at Gem."),
			Summary:    str("Caroline just joined Abstract Ventures as Operating Partner for Talent after 4 years leading People at Gem (50 to 300 employees). Built recruiting at Plaid during hypergrowth, started at Google. She advises Abstract's portfolio companies on hiring and org design. Strong connector — she can intro you to Abstract portfolio companies that need agent/automation tooling. Also published on hiring in the AI era."),
			Context:    str("Caroline and you have a mutual friend in David Park from the Plaid days. David introduced you over email last month. She's interested in understanding the AI agent landscape to better advise Abstract's portfolio companies on technical hiring and tooling decisions. First meeting."),
			Notes: jsonList(
				"Abstract has ~30 portfolio companies — Caroline works closely with about 12 of them on talent.",
				"David Park said she's incredibly well-connected in SF/NYC startup circles.",
				"She's writing a series on AI and hiring — might be worth sharing your perspective for her next piece.",
			),
		},
	},
	{
		contact: model.Contact{
			Name:        "Brandon",
			Role:        str("Wealth Advisor"),
			ImageURL:    avatar("Brandon"),
			Bio:         str("Wealth management professional at Spring Street Wealth."),
			LinkedinURL: str("https://linkedin.com"),
		},
		org: "Spring Street Wealth",
		links: []model.ContactLink{
			{Type: model.LinkLinkedin, URL: "https://linkedin.com"},
			{Type: model.LinkWebsite, URL: "https://springstreetwealth.com", Label: str("Spring Street Wealth")},
		},
		career: []model.CareerEntry{
			{Role: "Wealth Advisor", Company: "Spring Street Wealth", StartDate: str("2022"), EndDate: str("Present"), Description: str("Financial planning and wealth management for high-net-worth individuals."), IsCurrent: true, Source: str("LinkedIn"), SourceURL: str("https://linkedin.com")},
			{Role: "Financial Advisor", Company: "Merrill Lynch", StartDate: str("2018"), EndDate: str("2022"), Description: str("Managed $50M+ in client assets. Focus on tech executives and entrepreneurs."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com")},
		},
		timeline: []model.TimelineEntry{
			{Type: model.InteractionNote, Title: "Became a client", Description: str("Started working with Brandon at Spring Street Wealth for personal financial planning and wealth management."), Date: "Mar 2023", Channel: str("in-person")},
			{Type: model.InteractionMeeting, Title: "Quarterly portfolio review", Description: str("Reviewed Q3 performance. Discussed increasing allocation to alternatives and re-balancing tech-heavy positions."), Date: "Oct 15, 2025", Duration: str("45 min"), Channel: str("in-person")},
			{Type: model.InteractionEmail, Title: "Q4 recap and Feb check-in", Description: str("Hey Daniel, happy new year. Q4 was solid — portfolio up 8.2%. Let's schedule our quarterly review. I have availability Feb 9 in the afternoon if that works?"), Date: "Jan 5, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("brandon@springstreetwealth.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Q4 recap and Feb check-in", Description: str("Sounds great. Let's do 3 PM on Feb 9. Looking forward to it."), Date: "Jan 7, 2026", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("brandon@springstreetwealth.com"), Channel: str("gmail")},
		},
		meeting: &model.Meeting{
			Time: "3:00 PM", Hour: 15,
			TalkingPoints: jsonList(
				"Discuss wealth management strategies",
				"Explore financial planning options",
			),
			RecentNews: str("Research pending - more details to follow."),
			Summary:    str("Brandon is a wealth advisor at Spring Street Wealth, previously at Merrill Lynch where he managed $50M+ in client assets focused on tech executives and entrepreneurs. Moved to Spring Street in 2022 to work with high-net-worth individuals in a more boutique setting."),
			Context:    str("Personal connection — Brandon has been your wealth advisor since 2023. This is a regular quarterly check-in to review portfolio allocation and financial planning. Casual, relationship-focused meeting."),
			Notes: jsonList(
				"Last quarter you discussed increasing alternatives allocation to 15% — follow up on that.",
				"He mentioned exploring direct real estate syndication opportunities in Denver.",
			),
		},
	},
	{
		contact: model.Contact{
			Name:        "Justin Kunz",
			Role:        str("CEO & Founding Partner"),
			ImageURL:    avatar("Justin+Kunz"),
			Bio:         str("Former BlackRock and Fidelity executive. Launched Inflection Capital to focus on alternative investment distribution and advisory services."),
			LinkedinURL: str("https://linkedin.com/in/justinkunz"),
		},
		org: "Inflection Capital",
		links: []model.ContactLink{
			{Type: model.LinkLinkedin, URL: "https://linkedin.com/in/justinkunz"},
			{Type: model.LinkWebsite, URL: "https://inflectioncap.com", Label: str("Inflection Capital")},
			{Type: model.LinkTwitter, URL: "https://x.com/justinkunz"},
			{Type: model.LinkSubstack, URL: "https://justinkunz.substack.com", Label: str("Newsletter")},
		},
		career: []model.CareerEntry{
			{Role: "CEO & Founding Partner", Company: "Inflection Capital", StartDate: str("2025"), EndDate: str("Present"), Description: str("Building an alternatives distribution platform connecting fund managers with wealth advisors."), IsCurrent: true, Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/justinkunz")},
			{Role: "Managing Director", Company: "Fidelity Investments", StartDate: str("2019"), EndDate: str("2025"), Description: str("Led alternative investment distribution strategy. Built partnerships with 500+ RIAs and wirehouses."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/justinkunz")},
			{Role: "Vice President", Company: "BlackRock", StartDate: str("2014"), EndDate: str("2019"), Description: str("Alternative investments product specialist. Covered institutional and wealth management channels."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/justinkunz")},
			{Role: "Associate", Company: "J.P. Morgan", StartDate: str("2010"), EndDate: str("2014"), Description: str("Private banking coverage of UHNW clients. Focus on alternative allocations."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/justinkunz")},
		},
		news: []model.NewsItem{
			{Title: "Fidelity alternatives veteran launches Inflection Capital", Source: str("Citywire RIA"), URL: str("https://citywire.com/ria/news/justin-kunz-inflection-capital"), Date: "Jan 2026", Summary: str("Justin Kunz left his Managing Director role at Fidelity to build an alternatives distribution platform for wealth advisors.")},
		},
		events: []model.LifeEvent{
			{Event: "Founded company", Date: "Jan 2026", Description: str("Launched Inflection Capital after 6 years at Fidelity Investments."), Source: str("LinkedIn"), SourceURL: str("https://linkedin.com/in/justinkunz/posts/launching-inflection")},
			{Event: "Left Fidelity", Date: "Dec 2025", Description: str("Departed Managing Director role to pursue entrepreneurship in alternatives distribution."), Source: str("Citywire RIA"), SourceURL: str("https://citywire.com/ria/news/justin-kunz-inflection-capital")},
			{Event: "New baby", Date: "Oct 2025", Description: str("Welcomed second child — a daughter."), Source: str("LinkedIn")},
		},
		timeline: []model.TimelineEntry{
			{Type: model.InteractionEmail, Title: "Potential synergies — agent infra x alts distribution", Description: str("Hi Daniel, I'm Justin Kunz — just left Fidelity to start Inflection Capital. I've been following your work on agent infrastructure and I think there's a huge opportunity at the intersection of AI agents and alternative investment distribution..."), Date: "Jan 18, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("justin@inflectioncap.com"), ToAddress: str("daniel@example.com"), Channel: str("linkedin")},
			{Type: model.InteractionEmail, Title: "Re: Potential synergies — agent infra x alts distribution", Description: str("Justin, interesting background and compelling thesis. I can see how agent automation could transform advisor workflows. Let's find 15 min to chat this week."), Date: "Jan 20, 2026", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("justin@inflectioncap.com"), Channel: str("gmail")},
			{Type: model.InteractionCall, Title: "Intro call — Inflection Capital vision", Description: str("Quick intro call. Justin pitched the Inflection vision: building an alternatives distribution platform for modern wealth advisors. He sees agent automation as key to making alt due diligence and onboarding frictionless. Energetic, well-prepared, clear thinker."), Date: "Jan 22, 2026", Duration: str("15 min"), Channel: str("phone")},
			{Type: model.InteractionEmail, Title: "Re: Potential synergies — agent infra x alts distribution", Description: str("Quick call was great. I'm going to be in Denver Feb 9 — could we meet in person? I'd love to go deeper on the collaboration ideas we discussed."), Date: "Jan 25, 2026", Direction: dir(model.DirectionInbound), FromAddress: str("justin@inflectioncap.com"), ToAddress: str("daniel@example.com"), Channel: str("gmail")},
			{Type: model.InteractionEmail, Title: "Re: Potential synergies — agent infra x alts distribution", Description: str("Sounds good, Justin. I have 3:30 PM open. Let's meet then. Looking forward to it."), Date: "Jan 26, 2026", Direction: dir(model.DirectionOutbound), FromAddress: str("daniel@example.com"), ToAddress: str("justin@inflectioncap.com"), Channel: str("gmail")},
		},
		meeting: &model.Meeting{
			Time: "3:30 PM", Hour: 15.5,
			TalkingPoints: jsonList(
				"Understand Inflection's thesis on AI in financial services",
				"Discuss distribution partnerships for fintech products",
				"Explore how agent infrastructure applies to wealth/alts",
			),
			RecentNews: str("Recently launched Inflection Capital after leaving Fidelity."),
			Summary:    str("Justin left a Managing Director role at Fidelity in December to launch Inflection Capital, an alternatives distribution platform. 15+ years spanning J.P. Morgan, BlackRock, and Fidelity. Built partnerships with 500+ RIAs at Fidelity. Just started a Substack on democratizing alt investment access. New baby in October. He's building in a space where agent automation could be transformative for advisor workflows."),
			Context:    str("Cold outreach from Justin via LinkedIn in January. He'd seen coverage of your company and thought there were synergies between agent infrastructure and the wealth/alts distribution problem he's solving. You had a quick 15-minute intro call where he pitched the Inflection vision. He was energetic and well-prepared. Meeting to go deeper on potential collaboration."),
			Notes: jsonList(
				"Justin's Substack already has 800+ subscribers after one post — strong distribution instincts.",
				"He had a baby in October — congratulate him and ask how things are going.",
				"Inflection is pre-product but he's talking to 50+ RIAs for discovery. Could be a great design partner scenario.",
			),
		},
	},
}
