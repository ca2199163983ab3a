package catalog

import "github.com/ventiq/ventiq-terminal/pkg/models"

func adminTutorials() []*models.Tutorial {
	return []*models.Tutorial{
		{
			Key:   "registro-empresa",
			Title: "Registrar una empresa",
			Steps: []models.Step{
				{
					Title: "Crear cuenta de administrador",
					Body:  "Registra una nueva cuenta para el administrador de la empresa.",
					Instructions: []string{
						"Accede a la página de registro de Inventtia Admin",
						"Ingresa el nombre completo del administrador",
						"Proporciona un email válido",
						"Crea una contraseña segura",
						"Confirma la contraseña",
					},
				},
				{
					Title: "Información de la empresa",
					Body:  "Completa los datos básicos de tu empresa.",
					Instructions: []string{
						"Ingresa el nombre de la empresa",
						"Proporciona la dirección física",
						"Especifica la ubicación (ciudad, país)",
						"Agrega información de contacto adicional",
					},
				},
				{
					Title: "Configuración inicial",
					Body:  "Configura los elementos básicos necesarios para operar.",
					Instructions: []string{
						"Crea al menos un punto de venta (TPV)",
						"Configura al menos un almacén",
						"Asigna personal con sus respectivos roles",
						"Verifica que toda la información sea correcta",
					},
				},
				{
					Title: "Finalizar registro",
					Body:  "Completa el proceso de registro y activa tu cuenta.",
					Instructions: []string{
						"Revisa toda la información ingresada",
						"Confirma que los datos sean correctos",
						"Acepta los términos y condiciones",
						"Finaliza el registro",
						"Verifica tu email para activar la cuenta",
					},
				},
			},
		},
		{
			Key:   "configuracion-categorias",
			Title: "Configuración de Categorías y Subcategorías",
			Steps: []models.Step{
				{
					Title: "Acceder a configuración",
					Body:  "Abre la sección de categorías por tienda.",
					Instructions: []string{
						"Desde el menú admin",
						`Entra a "Productos"`,
						`Selecciona "Categorías por tienda"`,
						"Carga la vista de categorías",
					},
				},
				{
					Title: "Ver categorías existentes",
					Body:  "Revisa el listado actual de categorías.",
					Instructions: []string{
						"Observa las categorías existentes",
						"Revisa su estado y jerarquía",
						"Identifica las que necesitan ajustes",
					},
				},
				{
					Title: "Crear nueva categoría",
					Body:  "Agrega una nueva categoría.",
					Instructions: []string{
						`Haz clic en "Nueva Categoría"`,
						"Escribe el nombre y descripción",
						"Guarda la nueva categoría",
					},
				},
				{
					Title: "Gestionar subcategorías",
					Body:  "Crea o edita subcategorías por tienda.",
					Instructions: []string{
						"Selecciona una categoría",
						`Haz clic en "Agregar Subcategoría"`,
						"Completa los datos y guarda",
						"Verifica la relación con la categoría padre",
					},
				},
				{
					Title: "Revisar y confirmar",
					Body:  "Verifica que los cambios se reflejan en el catálogo.",
					Instructions: []string{
						"Vuelve al listado principal",
						"Confirma que aparecen las nuevas categorías/subcategorías",
						"Comprueba que los productos pueden asignarse correctamente",
					},
				},
			},
		},
		{
			Key:   "almacenes",
			Title: "Gestionar almacenes",
			Steps: []models.Step{
				{
					Title: "Abrir módulo de Almacenes",
					Body:  "Accede al módulo para gestionar tus almacenes.",
					Instructions: []string{
						"Desde el menú principal",
						`Selecciona "Almacenes"`,
						"Espera a que cargue el listado de almacenes",
					},
				},
				{
					Title: "Listado de almacenes",
					Body:  "Consulta y filtra los almacenes existentes.",
					Instructions: []string{
						"Revisa la lista de almacenes",
						"Usa búsqueda o filtros si es necesario",
						"Desde aquí puedes: crear un nuevo almacén o abrir los detalles de uno existente",
					},
				},
				{
					Title: "Ver detalles de un almacén",
					Body:  "Ingresa al detalle de un almacén para gestionar su configuración interna.",
					Instructions: []string{
						"Selecciona un almacén del listado",
						"Abre su vista de detalles",
						`Ubica las secciones de "Zonas", "Capacidades" y "Límites"`,
						"Revisa la configuración actual",
					},
				},
				{
					Title: "Gestionar zonas y capacidades",
					Body:  "Administra las zonas del almacén junto con sus capacidades y límites.",
					Instructions: []string{
						"Agrega una nueva zona si es necesario",
						"Define capacidad y límites por zona",
						"Guarda los cambios",
						"Nota: En este módulo NO se gestiona inventario de productos ni responsables de almacén",
					},
				},
			},
		},
		{
			Key:   "productos",
			Title: "Agregar productos",
			Steps: []models.Step{
				{
					Title: "Abrir módulo de Productos",
					Body:  "Accede al módulo para gestionar el clasificador de productos.",
					Instructions: []string{
						"Desde el menú principal",
						`Selecciona "Productos"`,
						"Espera a que cargue el listado de productos",
					},
				},
				{
					Title: "Listado de productos",
					Body:  "Consulta y filtra los productos existentes.",
					Instructions: []string{
						"Revisa la lista de productos",
						"Usa búsqueda o filtros si es necesario",
						"Desde aquí puedes: insertar un nuevo producto o editar uno existente",
					},
				},
				{
					Title: "Insertar nuevo producto",
					Body:  "Inicia el registro del producto.",
					Instructions: []string{
						`Haz clic en "Nuevo Producto"`,
						"Se abrirá el formulario de registro",
						"Prepárate para completar los datos generales",
					},
				},
				{
					Title: "Datos generales del producto",
					Body:  "Registra la información básica del producto.",
					Instructions: []string{
						"Escribe el nombre del producto",
						"Agrega una descripción (opcional)",
						"Define código/SKU si aplica",
						"Guarda temporalmente o continúa al siguiente paso",
					},
				},
				{
					Title: "Categoría y Subcategoría",
					Body:  "Clasifica el producto correctamente.",
					Instructions: []string{
						"Selecciona la categoría",
						"Selecciona la subcategoría correspondiente",
						"Verifica que la clasificación es correcta antes de continuar",
					},
				},
				{
					Title: "Precio de venta y otros datos",
					Body:  "Configura precio de venta y metadatos del producto.",
					Instructions: []string{
						"Registra el precio de venta",
						"Configura variantes (tallas, colores, etc.) si aplica",
						"Agrega presentaciones adicionales si aplica",
						"Para productos elaborados, registra los ingredientes",
						"Nota: Aquí SOLO se registra el clasificador del producto. NO se registra precio de costo ni cantidad en inventario.",
					},
				},
				{
					Title: "Confirmar y guardar",
					Body:  "Revisa el resumen y guarda el producto.",
					Instructions: []string{
						"Verifica los datos ingresados",
						"Confirma el registro del producto",
						"Regresarás al listado donde podrás ver el nuevo producto",
					},
				},
			},
		},
		{
			Key:   "recepcion",
			Title: "Recepcionar productos",
			Steps: []models.Step{
				{
					Title: "Abrir Inventario",
					Body:  "Accede al módulo de inventario desde el menú.",
					Instructions: []string{
						"Desde el menú principal",
						`Selecciona "Inventario"`,
						"Espera a que cargue el módulo",
					},
				},
				{
					Title: "Crear nueva operación",
					Body:  "Abre el panel de operaciones para iniciar un movimiento.",
					Instructions: []string{
						`Haz clic en el botón "Crear"`,
						"Revisa las opciones disponibles de operación",
					},
				},
				{
					Title: "Seleccionar Recepción de productos",
					Body:  "Elige el tipo de operación de recepción.",
					Instructions: []string{
						`Selecciona "Recepción de productos"`,
						"Se abrirá el formulario de recepción",
					},
				},
				{
					Title: "Seleccionar destino",
					Body:  "Define a qué almacén/zona se recepcionarán los productos.",
					Instructions: []string{
						"Selecciona el almacén o zona de destino",
						"Confirma la selección",
					},
				},
				{
					Title: "Seleccionar productos",
					Body:  "Elige los productos que vas a recepcionar.",
					Instructions: []string{
						"Busca y selecciona el/los producto(s)",
						"Puedes agregar varios productos a la recepción",
					},
				},
				{
					Title: "Definir cantidad y costo",
					Body:  "Registra cantidades y precio de costo unitario por producto.",
					Instructions: []string{
						"Ingresa la cantidad a recepcionar",
						"Registra el precio de costo unitario",
						"Repite por cada producto agregado",
					},
				},
				{
					Title: "Guardar operación",
					Body:  "Guarda la operación como pendiente.",
					Instructions: []string{
						"Revisa el resumen de la operación",
						"Guarda la recepción",
						"La operación queda en estado pendiente",
					},
				},
				{
					Title: "Buscar operación pendiente",
					Body:  "Localiza la operación pendiente para finalizarla.",
					Instructions: []string{
						"Abre el listado de operaciones",
						`Filtra por estado "Pendiente" si es necesario`,
						"Selecciona la operación que creaste",
					},
				},
				{
					Title: "Completar operación",
					Body:  "Confirma la recepción para aplicar los cambios.",
					Instructions: []string{
						"Revisa los datos finales",
						"Confirma la operación",
						"La recepción quedará como completada",
					},
				},
				{
					Title: "Ver inventario actualizado",
					Body:  "Retorna al listado y verifica las existencias actualizadas.",
					Instructions: []string{
						"Vuelve al listado de inventario",
						"Verifica que las cantidades estén actualizadas",
					},
				},
			},
		},
		{
			Key:   "transferencias",
			Title: "Transferencias entre Zonas",
			Steps: []models.Step{
				{
					Title: "Acceder a operaciones",
					Body:  "Ve a la sección de operaciones de inventario.",
					Instructions: []string{
						"Desde el menú principal",
						`Selecciona "Inventario"`,
						`Ve a "Operaciones"`,
						`Haz clic en "Nueva Transferencia"`,
					},
				},
				{
					Title: "Seleccionar zonas",
					Body:  "Define las zonas de origen y destino.",
					Instructions: []string{
						"Selecciona la zona de origen",
						"Elige la zona de destino",
						"Verifica que las zonas sean diferentes",
						"Confirma la selección",
					},
				},
				{
					Title: "Elegir productos",
					Body:  "Selecciona los productos a transferir.",
					Instructions: []string{
						"Busca el producto deseado",
						"Verifica el stock disponible en origen",
						"Selecciona la cantidad a transferir",
						"Agrega el producto a la transferencia",
					},
				},
				{
					Title: "Confirmar cantidades",
					Body:  "Revisa y confirma las cantidades seleccionadas.",
					Instructions: []string{
						"Verifica cada producto en la lista",
						"Ajusta cantidades si es necesario",
						"Confirma que no excedas el stock disponible",
						"Procede con la transferencia",
					},
				},
				{
					Title: "Ejecutar transferencia",
					Body:  "Completa el proceso de transferencia.",
					Instructions: []string{
						"Revisa el resumen final",
						"Confirma la operación",
						"El sistema actualiza automáticamente los inventarios",
						"Genera el comprobante de transferencia",
					},
				},
			},
		},
		{
			Key:   "dashboard-ventas",
			Title: "Dashboard de Ventas",
			Steps: []models.Step{
				{
					Title: "Acceder al dashboard ejecutivo",
					Body:  "Navega al panel principal de análisis de ventas.",
					Instructions: []string{
						"Inicia sesión en VentIQ Admin",
						"Ve al menú principal",
						`Selecciona "Dashboard Ejecutivo"`,
						"Observa las métricas generales del negocio",
					},
				},
				{
					Title: "Analizar ventas generales",
					Body:  "Revisa las métricas principales de ventas.",
					Instructions: []string{
						"Observa el total de ventas del período",
						"Revisa el número de transacciones",
						"Analiza las tendencias de crecimiento",
						"Identifica los picos de ventas",
					},
				},
				{
					Title: "Ventas por vendedor",
					Body:  "Analiza el rendimiento individual de cada vendedor.",
					Instructions: []string{
						`Ve a la sección "Ventas por Vendedor"`,
						"Compara el rendimiento entre vendedores",
						"Identifica a los vendedores más productivos",
						"Revisa las metas y objetivos alcanzados",
					},
				},
				{
					Title: "Generar reportes",
					Body:  "Crea reportes detallados de ventas.",
					Instructions: []string{
						"Selecciona el período de análisis",
						"Elige los filtros necesarios",
						"Genera el reporte de ventas",
						"Exporta los datos si es necesario",
					},
				},
			},
		},
	}
}
