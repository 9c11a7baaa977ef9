package grammar

// Each query captures the declarations a language contributes as symbols.
// A capture named "<kind>.name" supplies the symbol's display name; a
// capture named "<kind>" (no ".name" suffix) anchors the node whose extent
// and structure become the symbol itself. Captures prefixed "call" record
// call-site references rather than symbols.

const RustQuery = `
    (function_item name: (identifier) @function.name) @function
    (struct_item name: (type_identifier) @struct.name) @struct
    (impl_item type: (type_identifier) @impl.name) @impl
    (trait_item name: (type_identifier) @trait.name) @trait
    (mod_item name: (identifier) @module.name) @module
    (type_item name: (type_identifier) @type.name) @type
    (enum_item name: (type_identifier) @enum.name) @enum
    (call_expression function: (identifier) @call.name) @call
    (call_expression function: (field_expression field: (field_identifier) @call.name)) @call
`

const PythonQuery = `
    (function_definition name: (identifier) @function.name) @function
    (class_definition name: (identifier) @class.name) @class
`

const JavaScriptQuery = `
    (function_declaration name: (identifier) @function.name) @function
    (method_definition name: (property_identifier) @method.name) @method
    (class_declaration name: (identifier) @class.name) @class
    (variable_declarator name: (identifier) @variable.name value: (arrow_function)) @function
`

const TypeScriptQuery = `
    (function_declaration name: (identifier) @function.name) @function
    (method_definition name: (property_identifier) @method.name) @method
    (class_declaration name: (identifier) @class.name) @class
    (interface_declaration name: (type_identifier) @interface.name) @interface
    (type_alias_declaration name: (type_identifier) @type.name) @type
    (enum_declaration name: (identifier) @enum.name) @enum
`

const GoQuery = `
    (function_declaration name: (identifier) @function.name) @function
    (method_declaration name: (field_identifier) @method.name) @method
    (type_declaration (type_spec name: (type_identifier) @type.name)) @type
`

const CQuery = `
    (function_definition declarator: (function_declarator declarator: (identifier) @function.name)) @function
    (struct_specifier name: (type_identifier) @struct.name) @struct
    (type_definition declarator: (type_identifier) @type.name) @type
`

const CppQuery = `
    (function_definition declarator: (function_declarator declarator: (identifier) @function.name)) @function
    (class_specifier name: (type_identifier) @class.name) @class
    (struct_specifier name: (type_identifier) @struct.name) @struct
    (namespace_definition name: (identifier) @namespace.name) @namespace
`

const JavaQuery = `
    (class_declaration name: (identifier) @class.name) @class
    (interface_declaration name: (identifier) @interface.name) @interface
    (method_declaration name: (identifier) @method.name) @method
    (constructor_declaration name: (identifier) @method.name) @method
`

const RubyQuery = `
    (method name: (identifier) @method.name) @method
    (class name: [
        (constant) @class.name
        (scope_resolution name: (constant) @class.name)
    ]) @class
    (module name: [
        (constant) @module.name
        (scope_resolution name: (constant) @module.name)
    ]) @module
`

const CSharpQuery = `
    (class_declaration name: (identifier) @class.name) @class
    (interface_declaration name: (identifier) @interface.name) @interface
    (method_declaration name: (identifier) @method.name) @method
    (struct_declaration name: (identifier) @struct.name) @struct
    (enum_declaration name: (identifier) @enum.name) @enum
    (namespace_declaration name: [
        (identifier) @namespace.name
        (qualified_name) @namespace.name
    ]) @namespace
`

const PHPQuery = `
    (function_definition name: (identifier) @function.name) @function
    (method_declaration name: (identifier) @method.name) @method
    (class_declaration name: (identifier) @class.name) @class
    (interface_declaration name: (identifier) @interface.name) @interface
    (trait_declaration name: (identifier) @trait.name) @trait
`

const JSONQuery = `
    (pair key: (string (string_content) @key.name)) @pair
`

const HTMLQuery = `
    (tag_name) @tag.name
    (attribute_name) @attr.name
`

const CSSQuery = `
    (class_selector (class_name) @class.name) @class
    (id_selector (id_name) @id.name) @id
    (declaration property: (property_name) @prop.name) @decl
`

const MarkdownQuery = `
    (atx_heading (atx_h1_marker) (heading_content) @h1.name) @h1
    (atx_heading (atx_h2_marker) (heading_content) @h2.name) @h2
    (atx_heading (atx_h3_marker) (heading_content) @h3.name) @h3
`
