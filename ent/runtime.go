// Code generated by ent, DO NOT EDIT.

package ent

import (
	"sitecms/ent/blogpost"
	"sitecms/ent/category"
	"sitecms/ent/categorylink"
	"sitecms/ent/contentblock"
	"sitecms/ent/product"
	"sitecms/ent/project"
	"sitecms/ent/schema"
	"sitecms/ent/servicepage"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blogpostFields := schema.BlogPost{}.Fields()
	_ = blogpostFields
	// blogpostDescTitle is the schema descriptor for title field.
	blogpostDescTitle := blogpostFields[1].Descriptor()
	// blogpost.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	blogpost.TitleValidator = func() func(string) error {
		validators := blogpostDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// blogpostDescSlug is the schema descriptor for slug field.
	blogpostDescSlug := blogpostFields[2].Descriptor()
	// blogpost.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	blogpost.SlugValidator = func() func(string) error {
		validators := blogpostDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// blogpostDescExcerpt is the schema descriptor for excerpt field.
	blogpostDescExcerpt := blogpostFields[3].Descriptor()
	// blogpost.DefaultExcerpt holds the default value on creation for the excerpt field.
	blogpost.DefaultExcerpt = blogpostDescExcerpt.Default.(string)
	// blogpost.ExcerptValidator is a validator for the "excerpt" field. It is called by the builders before save.
	blogpost.ExcerptValidator = blogpostDescExcerpt.Validators[0].(func(string) error)
	// blogpostDescBody is the schema descriptor for body field.
	blogpostDescBody := blogpostFields[4].Descriptor()
	// blogpost.DefaultBody holds the default value on creation for the body field.
	blogpost.DefaultBody = blogpostDescBody.Default.(string)
	// blogpostDescImageURL is the schema descriptor for image_url field.
	blogpostDescImageURL := blogpostFields[5].Descriptor()
	// blogpost.DefaultImageURL holds the default value on creation for the image_url field.
	blogpost.DefaultImageURL = blogpostDescImageURL.Default.(string)
	// blogpost.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	blogpost.ImageURLValidator = blogpostDescImageURL.Validators[0].(func(string) error)
	// blogpostDescPublished is the schema descriptor for published field.
	blogpostDescPublished := blogpostFields[6].Descriptor()
	// blogpost.DefaultPublished holds the default value on creation for the published field.
	blogpost.DefaultPublished = blogpostDescPublished.Default.(bool)
	// blogpostDescCreatedAt is the schema descriptor for created_at field.
	blogpostDescCreatedAt := blogpostFields[9].Descriptor()
	// blogpost.DefaultCreatedAt holds the default value on creation for the created_at field.
	blogpost.DefaultCreatedAt = blogpostDescCreatedAt.Default.(func() time.Time)
	// blogpostDescUpdatedAt is the schema descriptor for updated_at field.
	blogpostDescUpdatedAt := blogpostFields[10].Descriptor()
	// blogpost.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blogpost.DefaultUpdatedAt = blogpostDescUpdatedAt.Default.(func() time.Time)
	// blogpost.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blogpost.UpdateDefaultUpdatedAt = blogpostDescUpdatedAt.UpdateDefault.(func() time.Time)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescFamily is the schema descriptor for family field.
	categoryDescFamily := categoryFields[1].Descriptor()
	// category.FamilyValidator is a validator for the "family" field. It is called by the builders before save.
	category.FamilyValidator = func() func(string) error {
		validators := categoryDescFamily.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(family string) error {
			for _, fn := range fns {
				if err := fn(family); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[2].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = func() func(string) error {
		validators := categoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescSlug is the schema descriptor for slug field.
	categoryDescSlug := categoryFields[3].Descriptor()
	// category.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	category.SlugValidator = func() func(string) error {
		validators := categoryDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescDisplayOrder is the schema descriptor for display_order field.
	categoryDescDisplayOrder := categoryFields[5].Descriptor()
	// category.DefaultDisplayOrder holds the default value on creation for the display_order field.
	category.DefaultDisplayOrder = categoryDescDisplayOrder.Default.(int)
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[6].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	categorylinkFields := schema.CategoryLink{}.Fields()
	_ = categorylinkFields
	// categorylinkDescFamily is the schema descriptor for family field.
	categorylinkDescFamily := categorylinkFields[1].Descriptor()
	// categorylink.FamilyValidator is a validator for the "family" field. It is called by the builders before save.
	categorylink.FamilyValidator = func() func(string) error {
		validators := categorylinkDescFamily.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(family string) error {
			for _, fn := range fns {
				if err := fn(family); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categorylinkDescCreatedAt is the schema descriptor for created_at field.
	categorylinkDescCreatedAt := categorylinkFields[5].Descriptor()
	// categorylink.DefaultCreatedAt holds the default value on creation for the created_at field.
	categorylink.DefaultCreatedAt = categorylinkDescCreatedAt.Default.(func() time.Time)
	contentblockFields := schema.ContentBlock{}.Fields()
	_ = contentblockFields
	// contentblockDescPage is the schema descriptor for page field.
	contentblockDescPage := contentblockFields[1].Descriptor()
	// contentblock.PageValidator is a validator for the "page" field. It is called by the builders before save.
	contentblock.PageValidator = func() func(string) error {
		validators := contentblockDescPage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(page string) error {
			for _, fn := range fns {
				if err := fn(page); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentblockDescSectionType is the schema descriptor for section_type field.
	contentblockDescSectionType := contentblockFields[2].Descriptor()
	// contentblock.SectionTypeValidator is a validator for the "section_type" field. It is called by the builders before save.
	contentblock.SectionTypeValidator = func() func(string) error {
		validators := contentblockDescSectionType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(section_type string) error {
			for _, fn := range fns {
				if err := fn(section_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contentblockDescActive is the schema descriptor for active field.
	contentblockDescActive := contentblockFields[4].Descriptor()
	// contentblock.DefaultActive holds the default value on creation for the active field.
	contentblock.DefaultActive = contentblockDescActive.Default.(bool)
	// contentblockDescTitle is the schema descriptor for title field.
	contentblockDescTitle := contentblockFields[5].Descriptor()
	// contentblock.DefaultTitle holds the default value on creation for the title field.
	contentblock.DefaultTitle = contentblockDescTitle.Default.(string)
	// contentblock.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	contentblock.TitleValidator = contentblockDescTitle.Validators[0].(func(string) error)
	// contentblockDescSubtitle is the schema descriptor for subtitle field.
	contentblockDescSubtitle := contentblockFields[6].Descriptor()
	// contentblock.DefaultSubtitle holds the default value on creation for the subtitle field.
	contentblock.DefaultSubtitle = contentblockDescSubtitle.Default.(string)
	// contentblock.SubtitleValidator is a validator for the "subtitle" field. It is called by the builders before save.
	contentblock.SubtitleValidator = contentblockDescSubtitle.Validators[0].(func(string) error)
	// contentblockDescBody is the schema descriptor for body field.
	contentblockDescBody := contentblockFields[7].Descriptor()
	// contentblock.DefaultBody holds the default value on creation for the body field.
	contentblock.DefaultBody = contentblockDescBody.Default.(string)
	// contentblockDescImageURL is the schema descriptor for image_url field.
	contentblockDescImageURL := contentblockFields[8].Descriptor()
	// contentblock.DefaultImageURL holds the default value on creation for the image_url field.
	contentblock.DefaultImageURL = contentblockDescImageURL.Default.(string)
	// contentblock.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	contentblock.ImageURLValidator = contentblockDescImageURL.Validators[0].(func(string) error)
	// contentblockDescButtonText is the schema descriptor for button_text field.
	contentblockDescButtonText := contentblockFields[9].Descriptor()
	// contentblock.DefaultButtonText holds the default value on creation for the button_text field.
	contentblock.DefaultButtonText = contentblockDescButtonText.Default.(string)
	// contentblock.ButtonTextValidator is a validator for the "button_text" field. It is called by the builders before save.
	contentblock.ButtonTextValidator = contentblockDescButtonText.Validators[0].(func(string) error)
	// contentblockDescButtonURL is the schema descriptor for button_url field.
	contentblockDescButtonURL := contentblockFields[10].Descriptor()
	// contentblock.DefaultButtonURL holds the default value on creation for the button_url field.
	contentblock.DefaultButtonURL = contentblockDescButtonURL.Default.(string)
	// contentblock.ButtonURLValidator is a validator for the "button_url" field. It is called by the builders before save.
	contentblock.ButtonURLValidator = contentblockDescButtonURL.Validators[0].(func(string) error)
	// contentblockDescCreatedAt is the schema descriptor for created_at field.
	contentblockDescCreatedAt := contentblockFields[12].Descriptor()
	// contentblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentblock.DefaultCreatedAt = contentblockDescCreatedAt.Default.(func() time.Time)
	// contentblockDescUpdatedAt is the schema descriptor for updated_at field.
	contentblockDescUpdatedAt := contentblockFields[13].Descriptor()
	// contentblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contentblock.DefaultUpdatedAt = contentblockDescUpdatedAt.Default.(func() time.Time)
	// contentblock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contentblock.UpdateDefaultUpdatedAt = contentblockDescUpdatedAt.UpdateDefault.(func() time.Time)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescTitle is the schema descriptor for title field.
	productDescTitle := productFields[1].Descriptor()
	// product.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	product.TitleValidator = func() func(string) error {
		validators := productDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productDescSlug is the schema descriptor for slug field.
	productDescSlug := productFields[2].Descriptor()
	// product.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	product.SlugValidator = func() func(string) error {
		validators := productDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productDescDescription is the schema descriptor for description field.
	productDescDescription := productFields[3].Descriptor()
	// product.DefaultDescription holds the default value on creation for the description field.
	product.DefaultDescription = productDescDescription.Default.(string)
	// productDescPrice is the schema descriptor for price field.
	productDescPrice := productFields[4].Descriptor()
	// product.DefaultPrice holds the default value on creation for the price field.
	product.DefaultPrice = productDescPrice.Default.(float64)
	// productDescImageURL is the schema descriptor for image_url field.
	productDescImageURL := productFields[5].Descriptor()
	// product.DefaultImageURL holds the default value on creation for the image_url field.
	product.DefaultImageURL = productDescImageURL.Default.(string)
	// product.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	product.ImageURLValidator = productDescImageURL.Validators[0].(func(string) error)
	// productDescActive is the schema descriptor for active field.
	productDescActive := productFields[6].Descriptor()
	// product.DefaultActive holds the default value on creation for the active field.
	product.DefaultActive = productDescActive.Default.(bool)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[8].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[9].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescTitle is the schema descriptor for title field.
	projectDescTitle := projectFields[1].Descriptor()
	// project.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	project.TitleValidator = func() func(string) error {
		validators := projectDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projectDescSlug is the schema descriptor for slug field.
	projectDescSlug := projectFields[2].Descriptor()
	// project.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	project.SlugValidator = func() func(string) error {
		validators := projectDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projectDescDescription is the schema descriptor for description field.
	projectDescDescription := projectFields[3].Descriptor()
	// project.DefaultDescription holds the default value on creation for the description field.
	project.DefaultDescription = projectDescDescription.Default.(string)
	// projectDescImageURL is the schema descriptor for image_url field.
	projectDescImageURL := projectFields[4].Descriptor()
	// project.DefaultImageURL holds the default value on creation for the image_url field.
	project.DefaultImageURL = projectDescImageURL.Default.(string)
	// project.ImageURLValidator is a validator for the "image_url" field. It is called by the builders before save.
	project.ImageURLValidator = projectDescImageURL.Validators[0].(func(string) error)
	// projectDescActive is the schema descriptor for active field.
	projectDescActive := projectFields[5].Descriptor()
	// project.DefaultActive holds the default value on creation for the active field.
	project.DefaultActive = projectDescActive.Default.(bool)
	// projectDescPosition is the schema descriptor for position field.
	projectDescPosition := projectFields[6].Descriptor()
	// project.DefaultPosition holds the default value on creation for the position field.
	project.DefaultPosition = projectDescPosition.Default.(int)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[8].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[9].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	servicepageFields := schema.ServicePage{}.Fields()
	_ = servicepageFields
	// servicepageDescTitle is the schema descriptor for title field.
	servicepageDescTitle := servicepageFields[1].Descriptor()
	// servicepage.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	servicepage.TitleValidator = func() func(string) error {
		validators := servicepageDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// servicepageDescSlug is the schema descriptor for slug field.
	servicepageDescSlug := servicepageFields[2].Descriptor()
	// servicepage.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	servicepage.SlugValidator = func() func(string) error {
		validators := servicepageDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// servicepageDescDescription is the schema descriptor for description field.
	servicepageDescDescription := servicepageFields[3].Descriptor()
	// servicepage.DefaultDescription holds the default value on creation for the description field.
	servicepage.DefaultDescription = servicepageDescDescription.Default.(string)
	// servicepageDescActive is the schema descriptor for active field.
	servicepageDescActive := servicepageFields[4].Descriptor()
	// servicepage.DefaultActive holds the default value on creation for the active field.
	servicepage.DefaultActive = servicepageDescActive.Default.(bool)
	// servicepageDescCreatedAt is the schema descriptor for created_at field.
	servicepageDescCreatedAt := servicepageFields[5].Descriptor()
	// servicepage.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicepage.DefaultCreatedAt = servicepageDescCreatedAt.Default.(func() time.Time)
	// servicepageDescUpdatedAt is the schema descriptor for updated_at field.
	servicepageDescUpdatedAt := servicepageFields[6].Descriptor()
	// servicepage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	servicepage.DefaultUpdatedAt = servicepageDescUpdatedAt.Default.(func() time.Time)
	// servicepage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	servicepage.UpdateDefaultUpdatedAt = servicepageDescUpdatedAt.UpdateDefault.(func() time.Time)
}
