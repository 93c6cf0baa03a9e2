package scaffold

import (
	"github.com/nestkit/create-module/internal/naming"
	"github.com/nestkit/create-module/internal/templates"
)

// Section names, in the order GenerateModule materializes them.
const (
	SectionApplication    = "application"
	SectionDomain         = "domain"
	SectionInfrastructure = "infrastructure"
	SectionPresentation   = "presentation"
)

// Sections lists the layout's top-level entries in materialization order.
// RootEntry goes last so the module file is written after its imports exist.
func Sections() []string {
	return []string{
		SectionApplication,
		SectionDomain,
		SectionInfrastructure,
		SectionPresentation,
		RootEntry,
	}
}

// Layout describes the files of a module named by module whose entity is
// named by entity.
func Layout(module, entity naming.Forms) Node {
	k := module.Kebab

	return Tree(
		At(RootEntry, Files(
			FileSpec{Filename: k + ".module.ts", TemplateID: templates.ModuleTemplate},
		)),
		At(SectionApplication, Files(
			FileSpec{Filename: k + "-api.service.ts", TemplateID: templates.APIServiceTemplate},
		)),
		At(SectionDomain, Tree(
			At("entities", Files(
				FileSpec{Filename: entity.Kebab + ".entity.ts", TemplateID: templates.EntityTemplate},
			)),
			At("repositories", Files(
				FileSpec{Filename: k + ".repository.ts", TemplateID: templates.RepositoryTemplate},
			)),
			At("services", Files(
				FileSpec{Filename: k + ".service.ts", TemplateID: templates.ServiceTemplate},
			)),
		)),
		At(SectionInfrastructure, Tree(
			At("cache", Dir()),
			At("mappers", Dir()),
			At("repositories", Dir()),
			At("services", Dir()),
		)),
		At(SectionPresentation, Tree(
			At("controllers", Files(
				FileSpec{Filename: k + ".controller.ts", TemplateID: templates.ControllerTemplate},
			)),
			At("dtos", Dir()),
		)),
	)
}

// Replacements builds the placeholder table shared by every generated file.
func Replacements(module, entity naming.Forms) templates.Replacements {
	var r templates.Replacements
	r.Set(templates.TokenModuleName, module.Pascal)
	r.Set(templates.TokenModuleNameKebab, module.Kebab)
	r.Set(templates.TokenModuleNameCamel, module.Camel)
	r.Set(templates.TokenModuleNameSnakeUpper, module.SnakeUpper)
	r.Set(templates.TokenEntityName, entity.Pascal)
	r.Set(templates.TokenEntityNameKebab, entity.Kebab)
	return r
}
