package main

import (
	// Import all section type packages to trigger their init() functions
	_ "github.com/quimera-ai/quimera/pkg/sections/banner"
	_ "github.com/quimera-ai/quimera/pkg/sections/carousel"
	_ "github.com/quimera-ai/quimera/pkg/sections/cta"
	_ "github.com/quimera-ai/quimera/pkg/sections/faq"
	_ "github.com/quimera-ai/quimera/pkg/sections/features"
	_ "github.com/quimera-ai/quimera/pkg/sections/footer"
	_ "github.com/quimera-ai/quimera/pkg/sections/globalstyles"
	_ "github.com/quimera-ai/quimera/pkg/sections/header"
	_ "github.com/quimera-ai/quimera/pkg/sections/hero"
	_ "github.com/quimera-ai/quimera/pkg/sections/howitworks"
	_ "github.com/quimera-ai/quimera/pkg/sections/leads"
	_ "github.com/quimera-ai/quimera/pkg/sections/mapblock"
	_ "github.com/quimera-ai/quimera/pkg/sections/menu"
	_ "github.com/quimera-ai/quimera/pkg/sections/newsletter"
	_ "github.com/quimera-ai/quimera/pkg/sections/portfolio"
	_ "github.com/quimera-ai/quimera/pkg/sections/pricing"
	_ "github.com/quimera-ai/quimera/pkg/sections/services"
	_ "github.com/quimera-ai/quimera/pkg/sections/slideshow"
	_ "github.com/quimera-ai/quimera/pkg/sections/team"
	_ "github.com/quimera-ai/quimera/pkg/sections/testimonials"
	_ "github.com/quimera-ai/quimera/pkg/sections/typography"
	_ "github.com/quimera-ai/quimera/pkg/sections/video"
)
